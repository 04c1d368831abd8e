package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterner_RoundTrip(t *testing.T) {
	in := New()

	h1 := in.Intern([]byte("foo"))
	h2 := in.Intern([]byte("foo"))
	h3 := in.Intern([]byte("bar"))

	assert.Equal(t, h1, h2, "interning the same bytes twice must return the same handle")
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, "foo", in.Lookup(h1))
	assert.Equal(t, "bar", in.Lookup(h3))
}

func TestInterner_MutationAfterIntern(t *testing.T) {
	in := New()
	buf := []byte("mutable")
	h := in.Intern(buf)

	buf[0] = 'X'

	assert.Equal(t, "mutable", in.Lookup(h), "Intern must copy, not alias, the input bytes")
}

func TestInterner_Len(t *testing.T) {
	in := New()
	assert.Equal(t, 0, in.Len())

	in.Intern([]byte("a"))
	in.Intern([]byte("b"))
	in.Intern([]byte("a"))

	assert.Equal(t, 2, in.Len())
}
