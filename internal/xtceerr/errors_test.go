package xtceerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		err      *ResolutionError
		expected string
	}{
		{
			name:     "full",
			err:      New(EscapesRoot, "/A/B", "../../C", "climbs above root"),
			expected: `[escapes-root] climbs above root (reference "../../C" in "/A/B")`,
		},
		{
			name:     "no context",
			err:      New(MalformedReference, "", "A//B", "empty segment"),
			expected: `[malformed-reference] empty segment (reference "A//B")`,
		},
		{
			name:     "kind only",
			err:      &ResolutionError{Kind: CyclicInheritance},
			expected: "[cyclic-inheritance]",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "resolution error <nil>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestResolutionError_Is(t *testing.T) {
	err := fmt.Errorf("inheritance of /A/C: %w", Newf(CyclicInheritance, "/A", "C", "container %q revisited", "C"))

	assert.True(t, errors.Is(err, ErrCyclicInheritance))
	assert.False(t, errors.Is(err, ErrEscapesRoot))
	assert.False(t, errors.Is(err, ErrUnresolvedReference))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, CyclicInheritance, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
