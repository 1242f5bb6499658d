package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlias_FullName(t *testing.T) {
	a := Alias{Name: "BATT_V", Namespace: "MIL-STD-1553"}
	assert.Equal(t, "MIL-STD-1553::BATT_V", a.FullName())

	empty := Alias{Name: "X"}
	assert.Equal(t, "::X", empty.FullName())
}

func TestAlias_Equal(t *testing.T) {
	a := Alias{Name: "BATT_V", Namespace: "ground"}

	assert.True(t, a.Equal(Alias{Name: "BATT_V", Namespace: "ground"}))
	assert.False(t, a.Equal(Alias{Name: "batt_v", Namespace: "ground"}), "comparison is case-sensitive")
	assert.False(t, a.Equal(Alias{Name: "BATT_V", Namespace: "Ground"}))
	assert.False(t, a.Equal(Alias{Name: "OTHER", Namespace: "ground"}))
}

func TestSet_LookupFirstWins(t *testing.T) {
	s := New(
		Alias{Name: "FIRST", Namespace: "ground"},
		Alias{Name: "ONBOARD", Namespace: "flight"},
		Alias{Name: "SECOND", Namespace: "ground"},
	)

	got, ok := s.Lookup("ground")
	require.True(t, ok)
	assert.Equal(t, "FIRST", got.Name, "the first alias of a duplicated namespace must win")

	got, ok = s.Lookup("flight")
	require.True(t, ok)
	assert.Equal(t, "ONBOARD", got.Name)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestSet_DuplicateNamespaces(t *testing.T) {
	s := New(
		Alias{Name: "A", Namespace: "ns1"},
		Alias{Name: "B", Namespace: "ns2"},
		Alias{Name: "C", Namespace: "ns1"},
		Alias{Name: "D", Namespace: "ns2"},
		Alias{Name: "E", Namespace: "ns3"},
	)

	assert.Equal(t, []string{"ns1", "ns2"}, s.DuplicateNamespaces())
	assert.Equal(t, []string{"ns1", "ns2", "ns3"}, s.Namespaces())
	assert.Equal(t, 5, s.Len())
	assert.Empty(t, New(Alias{Name: "A", Namespace: "x"}).DuplicateNamespaces())
}

func TestSet_AddAndContains(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.FullNames())

	s.Add(Alias{Name: "P1", Namespace: "ns"})
	assert.True(t, s.Contains(Alias{Name: "P1", Namespace: "ns"}))
	assert.False(t, s.Contains(Alias{Name: "P1", Namespace: "other"}))
	assert.Equal(t, []string{"ns::P1"}, s.FullNames())
}

func TestNew_CopiesInput(t *testing.T) {
	pairs := []Alias{{Name: "A", Namespace: "ns"}}
	s := New(pairs...)
	pairs[0].Name = "mutated"

	got, ok := s.Lookup("ns")
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)

	all := s.All()
	all[0].Name = "mutated"
	got, _ = s.Lookup("ns")
	assert.Equal(t, "A", got.Name)
}
