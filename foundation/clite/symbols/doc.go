// Package symbols implements the flat symbol table of a clite run.
package symbols
