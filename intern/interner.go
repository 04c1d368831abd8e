// Package intern collapses identical byte-string fragments produced by the
// lexer and parser into compact shared handles, so identifiers and string
// literals that recur throughout a source file are compared and cloned in
// O(1) instead of paying an O(n) byte comparison or allocation every time.
package intern

// Handle is an opaque reference to an interned byte string. Equal inputs to
// Interner.Intern always return equal Handles; Handles from different
// Interners are not comparable.
type Handle int

// Interner is a process-local, single-owner string table. One Interner is
// created per parse and outlives every Token and AST node that parse
// produces; it is never shared across parses (see parser.ParseAll, which
// gives each worker its own Interner).
type Interner struct {
	index  map[string]Handle
	values []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{
		index: make(map[string]Handle, 256),
	}
}

// Intern returns the Handle for b, allocating a new one if b has not been
// seen before. The byte slice is copied into the table, so the caller's
// slice may be reused or mutated afterward.
func (in *Interner) Intern(b []byte) Handle {
	return in.InternString(string(b))
}

// InternString is Intern for a string the caller already owns (the Go
// compiler elides the copy when s was already heap-allocated, e.g. produced
// by strconv or string concatenation).
func (in *Interner) InternString(s string) Handle {
	if h, ok := in.index[s]; ok {
		return h
	}
	h := Handle(len(in.values))
	in.values = append(in.values, s)
	in.index[s] = h
	return h
}

// Lookup dereferences a Handle back to its bytes. Lookup on a Handle not
// produced by this Interner panics with an index-out-of-range error, which
// is always a caller bug (a Handle escaped its owning parse).
func (in *Interner) Lookup(h Handle) string {
	return in.values[h]
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int {
	return len(in.values)
}
