package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceBasic(t *testing.T) {
	var s Sequence
	assert.Equal(t, "A", s.Next())
	assert.Equal(t, "B", s.Next())
}

func TestSequenceWrapsToTwoLetters(t *testing.T) {
	var s Sequence
	for i := 0; i < 25; i++ {
		s.Next()
	}
	assert.Equal(t, "Z", s.Next())
	assert.Equal(t, "AA", s.Next())
	assert.Equal(t, "AB", s.Next())
}

func TestSequenceMonotone(t *testing.T) {
	var s Sequence
	prev := ""
	for i := 0; i < 800; i++ {
		cur := s.Next()
		if prev != "" {
			assert.True(t, less(prev, cur), "%q should sort before %q", prev, cur)
		}
		prev = cur
	}
}

func TestFastForwardPast(t *testing.T) {
	var s Sequence
	s.FastForwardPast([]string{"A", "C", "AA"})
	assert.Equal(t, "AB", s.Peek())
}

func TestFastForwardPastEmpty(t *testing.T) {
	var s Sequence
	s.FastForwardPast(nil)
	assert.Equal(t, "A", s.Peek())
}

func TestFastForwardPastNoOpWhenAlreadyAhead(t *testing.T) {
	var s Sequence
	s.Next()
	s.Next()
	s.Next() // s.Peek() == "D"
	s.FastForwardPast([]string{"A", "B"})
	assert.Equal(t, "D", s.Peek())
}
