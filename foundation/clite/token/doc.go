// Package token defines the token classes of the clite language, the
// immutable Stream of (class, lexeme) pairs and the Cursor the
// interpreter walks it with.
package token
