package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.False(t, None[int]().Present())
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, 3, Some(3).OrElse(7))

	assert.False(t, NonEmpty("").Present())
	assert.Equal(t, "x", NonEmpty("x").OrElse(""))

	var nilPtr *string
	assert.False(t, FromPtr(nilPtr).Present())
	s := "y"
	assert.Equal(t, "y", FromPtr(&s).OrElse(""))
}

func TestFirstPresent(t *testing.T) {
	assert.Equal(t, "b", FirstPresent(NonEmpty(""), NonEmpty("b"), NonEmpty("c")).OrElse(""))
	assert.False(t, FirstPresent(NonEmpty(""), None[string]()).Present())
	assert.False(t, FirstPresent[string]().Present())
}

func TestFirstPresentFunc_ShortCircuits(t *testing.T) {
	calls := 0
	source := func(s string) func() Value[string] {
		return func() Value[string] {
			calls++
			return NonEmpty(s)
		}
	}

	got := FirstPresentFunc(source(""), source("hit"), source("never"))
	assert.Equal(t, "hit", got.OrElse(""))
	assert.Equal(t, 2, calls)
}
