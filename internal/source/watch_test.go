package source

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/msto63/clite/foundation/clite/token"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "prog.tok", sumPairs)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	type reload struct {
		stream *token.Stream
		err    error
	}
	reloads := make(chan reload, 4)

	w := NewWatcher(path, WatchOptions{Debounce: 20 * time.Millisecond, Logger: mdwlog.Discard()})
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s *token.Stream, err error) {
			reloads <- reload{s, err}
		})
	}()

	// Keep rewriting until the watcher is up and reports the change
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case r := <-reloads:
			if r.err != nil {
				// A reload may catch the file between truncate and write
				continue
			}
			if r.stream.Len() != 3*2 {
				t.Errorf("reloaded Len() = %d, want 6", r.stream.Len())
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Run() error = %v", err)
			}
			return
		case <-ticker.C:
			if err := os.WriteFile(path, []byte("type int main main ( (\n) ) { { } }\n"), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		case <-ctx.Done():
			t.Fatal("no reload within timeout")
		}
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher("/nonexistent/dir/prog.tok", WatchOptions{Logger: mdwlog.Discard()})
	if err := w.Run(context.Background(), func(*token.Stream, error) {}); err == nil {
		t.Error("Run() expected error for missing directory")
	}
}
