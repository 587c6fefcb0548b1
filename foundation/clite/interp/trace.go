// File: trace.go
// Title: Execution Tracing
// Description: Events emitted while a program is interpreted. A Tracer
//              receives them in order; Recorder keeps them for later
//              display.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package interp

import (
	"fmt"
	"strings"
	"sync"

	mdwlog "github.com/msto63/clite/foundation/core/log"
)

// Kind classifies trace events
type Kind int

const (
	KindDeclare Kind = iota + 1
	KindAssign
	KindPrint
	KindBranch
	KindLoop
	KindReturn
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindDeclare:
		return "declare"
	case KindAssign:
		return "assign"
	case KindPrint:
		return "print"
	case KindBranch:
		return "branch"
	case KindLoop:
		return "loop"
	case KindReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Kinds returns all event kinds in display order
func Kinds() []Kind {
	return []Kind{KindDeclare, KindAssign, KindPrint, KindBranch, KindLoop, KindReturn}
}

// Event describes one interpreted statement or decision
type Event struct {
	Kind     Kind   `json:"kind"`
	Position int    `json:"position"`
	Line     int    `json:"line,omitempty"`
	Executed bool   `json:"executed"`
	Name     string `json:"name,omitempty"`
	Value    string `json:"value,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// String renders the event as one line
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %-7s", e.Position, e.Kind)
	switch {
	case e.Name != "" && e.Value != "":
		fmt.Fprintf(&b, " %s = %s", e.Name, e.Value)
	case e.Name != "":
		fmt.Fprintf(&b, " %s", e.Name)
	case e.Value != "":
		fmt.Fprintf(&b, " %s", e.Value)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	if !e.Executed {
		b.WriteString(" [skipped]")
	}
	return b.String()
}

// Tracer receives interpreter events
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a function to the Tracer interface
type TracerFunc func(Event)

// Trace calls f(e)
func (f TracerFunc) Trace(e Event) { f(e) }

// Recorder collects events. It is safe for concurrent use so a UI can read
// while a run is in progress.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Trace appends e
func (r *Recorder) Trace(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]Event, len(r.events))
	copy(result, r.events)
	return result
}

// Len returns the number of recorded events
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Filter returns the recorded events of the given kinds
func (r *Recorder) Filter(kinds ...Kind) []Event {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var result []Event
	for _, e := range r.events {
		if want[e.Kind] {
			result = append(result, e)
		}
	}
	return result
}

func (in *Interpreter) emit(e Event) {
	if in.tracer != nil {
		in.tracer.Trace(e)
	}
	if in.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		in.logger.Trace(e.Kind.String(), mdwlog.Fields{
			"position": e.Position,
			"executed": e.Executed,
			"name":     e.Name,
			"value":    e.Value,
			"detail":   e.Detail,
		})
	}
}
