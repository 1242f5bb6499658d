package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtceerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type fixture struct {
	manager *Manager
	voltage *xtce.Parameter
	mode    *xtce.Parameter
	header  *xtce.Container
	hk      *xtce.Container
	volts   *xtce.TypeDefinition
}

// newFixture builds /Sat/Bus with a float type, two parameters and a
// two-level container chain.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := xtce.NewSpaceSystem("Sat")
	tree := xtce.NewTree(root)
	bus := xtce.NewSpaceSystem("Bus")
	require.NoError(t, tree.Attach(root, bus))

	lo, hi := 0.0, 32.0
	initial := cty.NumberFloatVal(28)
	volts := &xtce.TypeDefinition{
		NameDescription: xtce.NameDescription{Name: "VoltsType", ShortDescription: "bus voltage"},
		InitialValue:    &initial,
		Detail:          &xtce.FloatType{ValidRange: &xtce.FloatRange{MinInclusive: &lo, MaxInclusive: &hi, AppliesToCalibrated: true}},
	}
	bus.AddParameterType(volts)

	f := &fixture{volts: volts}
	f.voltage = &xtce.Parameter{
		NameDescription: xtce.NameDescription{
			Name:    "Voltage",
			Aliases: alias.New(alias.Alias{Name: "VBUS", Namespace: "MIB"}),
		},
		TypeRef: "VoltsType",
		Type:    volts,
	}
	own := cty.StringVal("OFF")
	f.mode = &xtce.Parameter{
		NameDescription: xtce.NameDescription{Name: "Mode", LongDescription: "operating mode"},
		InitialValue:    &own,
	}
	bus.AddParameter(f.voltage)
	bus.AddParameter(f.mode)

	f.header = &xtce.Container{NameDescription: xtce.NameDescription{Name: "Header"}}
	f.hk = &xtce.Container{
		NameDescription: xtce.NameDescription{Name: "HK"},
		BaseRef:         "Header",
		Entries:         []xtce.Entry{{Kind: xtce.ParameterRefEntry, Ref: "Voltage"}},
	}
	bus.AddSequenceContainer(f.hk)
	bus.AddSequenceContainer(f.header)

	f.manager = New(tree)
	return f
}

func TestManager_Queries(t *testing.T) {
	f := newFixture(t)
	m := f.manager
	ctx := context.Background()

	resolved, err := m.ResolvePath("/Sat/Bus", "../Payload/Temp")
	require.NoError(t, err)
	assert.Equal(t, "/Sat/Payload/Temp", resolved)

	_, err = m.ResolvePath("/Sat", "../X")
	assert.True(t, errors.Is(err, xtceerr.ErrEscapesRoot))

	assert.Equal(t, "bus voltage", m.EffectiveDescription(f.voltage))
	assert.Equal(t, "operating mode", m.EffectiveDescription(f.mode))
	assert.Equal(t, "28.0", m.EffectiveInitialValue(f.voltage))
	assert.Equal(t, "OFF", m.EffectiveInitialValue(f.mode))

	v, ok := m.InitialValue(f.voltage)
	require.True(t, ok)
	assert.Equal(t, cty.Number, v.Type())

	r := m.ValidRange(f.volts)
	assert.True(t, r.Applied)
	assert.Equal(t, "[0.0, 32.0]", r.String())
	assert.Equal(t, "calibrated", r.Basis())

	p, err := m.InheritancePath(ctx, f.hk)
	require.NoError(t, err)
	assert.Equal(t, "Header.HK", p.String())
	assert.Equal(t, "/Sat/Bus/HK", p.Storage)

	assert.True(t, m.ContainsParameter(f.hk, f.voltage))
	assert.False(t, m.ContainsParameter(f.header, f.voltage))

	found := m.FindByAlias(alias.Alias{Name: "VBUS", Namespace: "MIB"})
	require.Len(t, found, 1)
	assert.Same(t, f.voltage, found[0])

	got, err := m.ResolveParameter("/Sat/Bus", "Mode")
	require.NoError(t, err)
	assert.Same(t, f.mode, got)
}

func TestManager_SortContainers(t *testing.T) {
	f := newFixture(t)
	containers := []*xtce.Container{f.hk, f.header}
	require.NoError(t, f.manager.SortContainers(context.Background(), containers))
	assert.Equal(t, []*xtce.Container{f.header, f.hk}, containers)
}

func TestManager_NilContainer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.manager.InheritancePath(ctx, nil)
	assert.True(t, errors.Is(err, xtceerr.ErrUnresolvedReference))

	containers := []*xtce.Container{f.hk, nil}
	err = f.manager.SortContainers(ctx, containers)
	assert.True(t, errors.Is(err, xtceerr.ErrUnresolvedReference))
	assert.Same(t, f.hk, containers[0])
}

func TestManager_EditsRefreshPaths(t *testing.T) {
	f := newFixture(t)
	m := f.manager
	ctx := context.Background()

	before, err := m.InheritancePath(ctx, f.hk)
	require.NoError(t, err)
	gen := m.Generation()

	require.NoError(t, m.AddSpaceSystem(ctx, "/Sat", xtce.NewSpaceSystem("Platform")))
	require.NoError(t, m.Move(ctx, "/Sat/Bus", "/Sat/Platform"))
	require.NoError(t, m.Rename(ctx, "/Sat/Platform/Bus", "Power"))
	assert.Greater(t, m.Generation(), gen)

	after, err := m.InheritancePath(ctx, f.hk)
	require.NoError(t, err)
	assert.Equal(t, before.String(), after.String())
	assert.Equal(t, "/Sat/Platform/Power/HK", after.Storage)

	var fullPath string
	require.NoError(t, m.View(func(*xtce.Tree) error {
		fullPath = f.voltage.FullPath()
		return nil
	}))
	assert.Equal(t, "/Sat/Platform/Power/Voltage", fullPath)
}

func TestManager_EditErrors(t *testing.T) {
	f := newFixture(t)
	m := f.manager
	ctx := context.Background()

	err := m.Rename(ctx, "/Sat/Nope", "X")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = m.AddSpaceSystem(ctx, "/Sat", xtce.NewSpaceSystem("Bus"))
	assert.True(t, errors.Is(err, xtce.ErrDuplicateName))

	err = m.Move(ctx, "/Sat", "/Sat/Bus")
	assert.True(t, errors.Is(err, xtce.ErrInvalidEdit))

	err = m.Remove(ctx, "/Sat")
	assert.True(t, errors.Is(err, xtce.ErrInvalidEdit))

	require.NoError(t, m.Remove(ctx, "/Sat/Bus"))
	var found bool
	require.NoError(t, m.View(func(tree *xtce.Tree) error {
		_, found = tree.Lookup("/Sat/Bus")
		return nil
	}))
	assert.False(t, found)
}

func TestManager_UpdateInvalidatesMemo(t *testing.T) {
	f := newFixture(t)
	m := f.manager
	ctx := context.Background()

	_, err := m.InheritancePath(ctx, f.hk)
	require.NoError(t, err)

	require.NoError(t, m.Update(ctx, func(*xtce.Tree) error {
		f.header.BaseRef = "HK"
		return nil
	}))

	_, err = m.InheritancePath(ctx, f.hk)
	assert.True(t, errors.Is(err, xtceerr.ErrCyclicInheritance))

	containers := []*xtce.Container{f.hk, f.header}
	err = m.SortContainers(ctx, containers)
	require.Error(t, err)
	assert.Equal(t, []*xtce.Container{f.hk, f.header}, containers)
}

func TestManager_ConcurrentQueriesAndEdits(t *testing.T) {
	f := newFixture(t)
	m := f.manager
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				p, err := m.InheritancePath(ctx, f.hk)
				if assert.NoError(t, err) {
					assert.Equal(t, "Header.HK", p.String())
				}
				assert.Equal(t, "bus voltage", m.EffectiveDescription(f.voltage))
				assert.True(t, m.ContainsParameter(f.hk, f.voltage))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		names := []string{"Bus", "Power"}
		for j := 0; j < 100; j++ {
			from := "/Sat/" + names[j%2]
			assert.NoError(t, m.Rename(ctx, from, names[(j+1)%2]))
		}
	}()
	wg.Wait()

	p, err := m.InheritancePath(ctx, f.hk)
	require.NoError(t, err)
	assert.Equal(t, "/Sat/Bus/HK", p.Storage)
}
