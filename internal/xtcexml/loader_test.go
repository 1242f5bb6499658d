package xtcexml

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/effective"
	"github.com/CesarCoelho/xtcetools-sub001/internal/inheritance"
	"github.com/CesarCoelho/xtcetools-sub001/internal/testutil"
	"github.com/CesarCoelho/xtcetools-sub001/internal/validrange"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/encoding/charmap"
)

func loadSample(t *testing.T) (*xtce.Tree, *testutil.SafeBuffer) {
	t.Helper()
	ctx, logs := testutil.LogContext(t)
	tree, err := Load(ctx, strings.NewReader(testutil.SampleDocument))
	require.NoError(t, err)
	return tree, logs
}

func TestLoad_SpaceSystems(t *testing.T) {
	tree, _ := loadSample(t)

	var paths []string
	tree.Walk(func(ss *xtce.SpaceSystem) bool {
		paths = append(paths, ss.Path())
		return true
	})
	assert.Equal(t, []string{"/Sat", "/Sat/Common", "/Sat/Bus", "/Sat/Bus/Heater", "/Sat/Cmd"}, paths)
	assert.Equal(t, "Demo satellite", tree.Root().ShortDescription)

	found := tree.FindByAlias(alias.Alias{Name: "SAT", Namespace: "MIB"})
	require.Len(t, found, 1)
	assert.Same(t, tree.Root(), found[0])
}

func TestLoad_ParameterTypes(t *testing.T) {
	tree, _ := loadSample(t)

	apid, ok := tree.FindParameterType("/Sat/APIDType")
	require.True(t, ok)
	expected := &xtce.IntegerType{
		Encoding:   xtce.Encoding{SizeInBits: 11, Name: "unsigned"},
		Signed:     false,
		SizeInBits: 16,
	}
	if diff := cmp.Diff(expected, apid.Detail); diff != "" {
		t.Errorf("APIDType detail mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, xtce.TelemetrySpace, apid.Space)

	count, ok := tree.FindParameterType("/Sat/Common/CountType")
	require.True(t, ok)
	countDetail := count.Detail.(*xtce.IntegerType)
	assert.True(t, countDetail.Signed)
	assert.Equal(t, 32, countDetail.SizeInBits)
	assert.Equal(t, "twosComplement", countDetail.Encoding.Name)
	assert.Equal(t, &xtce.IntegerRange{MinInclusive: "-100", MaxInclusive: "100", AppliesToCalibrated: true}, countDetail.ValidRange)

	raw, ok := tree.FindParameterType("/Sat/Common/RawCountType")
	require.True(t, ok)
	assert.Same(t, count, raw.BaseType)

	mode, ok := tree.FindParameterType("/Sat/ModeType")
	require.True(t, ok)
	enum := mode.Detail.(*xtce.EnumeratedType)
	label, ok := enum.Label(5)
	require.True(t, ok)
	assert.Equal(t, "SPECIAL", label)

	volts, ok := tree.FindParameterType("/Sat/Common/VoltsType")
	require.True(t, ok)
	assert.Equal(t, []string{"V"}, volts.Units)

	flag, ok := tree.FindParameterType("/Sat/Common/FlagType")
	require.True(t, ok)
	require.NotNil(t, flag.InitialValue)
	assert.True(t, flag.InitialValue.True())

	label2, ok := tree.FindParameterType("/Sat/Bus/LabelType")
	require.True(t, ok)
	assert.Equal(t, xtce.CategoryString, label2.Category())
	assert.Equal(t, "US-ASCII", label2.Detail.DataEncoding().Name)
}

func TestLoad_ValidRanges(t *testing.T) {
	tree, _ := loadSample(t)

	testCases := []struct {
		path     string
		command  bool
		expected validrange.Range
	}{
		{
			path: "/Sat/Common/VoltsType",
			expected: validrange.Range{
				Applied: true, Low: "1.5", High: "10.0",
				LowInclusive: false, HighInclusive: true,
			},
		},
		{
			path: "/Sat/Common/CountType",
			expected: validrange.Range{
				Applied: true, Low: "-100", High: "100",
				LowInclusive: true, HighInclusive: true,
				LowCalibrated: true, HighCalibrated: true,
			},
		},
		{
			path: "/Sat/Common/FlagType",
			expected: validrange.Range{
				Applied: true, Low: "0", High: "1",
				LowInclusive: true, HighInclusive: true,
			},
		},
		{
			path:     "/Sat/ModeType",
			expected: validrange.Range{LowInclusive: true, HighInclusive: true},
		},
		{
			path:    "/Sat/Cmd/DelayType",
			command: true,
			expected: validrange.Range{
				Applied: true, Low: "0", High: "3600",
				LowInclusive: true, HighInclusive: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			find := tree.FindParameterType
			if tc.command {
				find = tree.FindArgumentType
			}
			typ, ok := find(tc.path)
			require.True(t, ok)
			if diff := cmp.Diff(tc.expected, validrange.Of(typ)); diff != "" {
				t.Errorf("range mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_ParametersAndEffectiveValues(t *testing.T) {
	tree, _ := loadSample(t)

	testCases := []struct {
		path        string
		description string
		initial     string
	}{
		{"/Sat/Mode", "Spacecraft operating mode", "SAFE"},
		{"/Sat/APID", "", ""},
		{"/Sat/Bus/Voltage", "Bus voltage", "5.5"},
		{"/Sat/Bus/Status", "Bus status", "true"},
		{"/Sat/Bus/Counter", "Raw counter", ""},
		{"/Sat/Bus/Ghost", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			p, ok := tree.FindParameter(tc.path)
			require.True(t, ok)
			assert.Equal(t, tc.description, effective.DescriptionText(p))
			assert.Equal(t, tc.initial, effective.InitialValueText(p))
		})
	}

	voltage, _ := tree.FindParameter("/Sat/Bus/Voltage")
	require.NotNil(t, voltage.InitialValue)
	assert.Equal(t, cty.Number, voltage.InitialValue.Type())
	first, ok := voltage.Aliases.Lookup("MIB")
	require.True(t, ok)
	assert.Equal(t, "VBUS", first.Name)

	status, _ := tree.FindParameter("/Sat/Bus/Status")
	assert.True(t, status.ReadOnly)

	ghost, _ := tree.FindParameter("/Sat/Bus/Ghost")
	assert.Nil(t, ghost.Type)
}

func TestLoad_AggregateAndArrayMembers(t *testing.T) {
	tree, _ := loadSample(t)

	position, ok := tree.FindParameterType("/Sat/Bus/PositionType")
	require.True(t, ok)
	agg, ok := position.Aggregate()
	require.True(t, ok)

	x, ok := agg.Member("X")
	require.True(t, ok)
	assert.Same(t, position, x.Aggregate())
	assert.Equal(t, "/Sat/Bus", x.SpaceSystemPath())
	assert.Equal(t, "Bus voltage", effective.DescriptionText(x))
	assert.Equal(t, "28.0", effective.InitialValueText(x))

	y, ok := agg.Member("Y")
	require.True(t, ok)
	require.NotNil(t, y.Type)
	assert.Equal(t, "/Sat/Common/CountType", y.Type.FullPath())

	cells, ok := tree.FindParameterType("/Sat/Bus/CellsType")
	require.True(t, ok)
	arr := cells.Detail.(*xtce.ArrayType)
	require.NotNil(t, arr.ElementType)
	assert.Equal(t, "VoltsType", arr.ElementType.Name)
	assert.Equal(t, 1, arr.Dimensions)
}

func TestLoad_Containers(t *testing.T) {
	tree, _ := loadSample(t)
	lookup := inheritance.TreeLookup(tree)

	header, ok := tree.FindContainer("/Sat/Header")
	require.True(t, ok)
	assert.True(t, header.Abstract)

	hk, ok := tree.FindContainer("/Sat/Bus/HK")
	require.True(t, ok)
	rate, ok := hk.AncillaryValue("rate")
	require.True(t, ok)
	assert.Equal(t, "1 Hz", rate)

	kinds := make([]xtce.EntryKind, 0, len(hk.Entries))
	for _, e := range hk.Entries {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []xtce.EntryKind{
		xtce.ParameterRefEntry,
		xtce.ArrayParameterRefEntry,
		xtce.ContainerRefEntry,
		xtce.ParameterRefEntry,
	}, kinds)

	block, ok := tree.FindContainer("/Sat/Bus/Heater/HeaterBlock")
	require.True(t, ok)
	p, err := inheritance.PathOf(block, lookup)
	require.NoError(t, err)
	assert.Equal(t, "Header.HK.HeaterBlock", p.String())

	voltage, _ := tree.FindParameter("/Sat/Bus/Voltage")
	status, _ := tree.FindParameter("/Sat/Bus/Status")
	temp, _ := tree.FindParameter("/Sat/Bus/Heater/Temp")
	apid, _ := tree.FindParameter("/Sat/APID")
	assert.True(t, inheritance.Contains(hk, voltage))
	assert.True(t, inheritance.Contains(hk, status))
	assert.False(t, inheritance.Contains(hk, temp))
	assert.False(t, inheritance.Contains(hk, apid))

	bus, ok := tree.Lookup("/Sat/Bus")
	require.True(t, ok)
	downlink, ok := bus.Stream("Downlink")
	require.True(t, ok)
	assert.Equal(t, xtce.FixedFrameStream, downlink.Kind)
	assert.Equal(t, "HK", downlink.ContainerRef)
}

func TestLoad_Commands(t *testing.T) {
	tree, _ := loadSample(t)

	reboot, ok := tree.FindMetaCommand("/Sat/Cmd/Reboot")
	require.True(t, ok)
	require.Len(t, reboot.Arguments, 2)

	delay, ok := reboot.Argument("Delay")
	require.True(t, ok)
	assert.Equal(t, "/Sat/Cmd/Delay", delay.FullPath())
	assert.Equal(t, "Seconds before reboot", effective.DescriptionText(delay))
	assert.Equal(t, "30", effective.InitialValueText(delay))
	require.NotNil(t, delay.Type)
	assert.Equal(t, xtce.CommandSpace, delay.Type.Space)

	force, ok := reboot.Argument("Force")
	require.True(t, ok)
	boolean := force.Type.Detail.(*xtce.BooleanType)
	assert.Equal(t, "False", boolean.ZeroStringValue)
	assert.Equal(t, "True", boolean.OneStringValue)

	container := reboot.CommandContainer
	require.NotNil(t, container)
	assert.Equal(t, xtce.CommandContainerKind, container.Kind)
	assert.Same(t, reboot, container.MetaCommand())
	assert.True(t, inheritance.ContainsArgument(container, delay))
	assert.False(t, inheritance.ContainsArgument(container, force))

	found, ok := tree.FindContainer("/Sat/Cmd/RebootContainer")
	require.True(t, ok)
	assert.Same(t, container, found)
}

func TestLoad_Warnings(t *testing.T) {
	_, logs := loadSample(t)

	out := logs.String()
	assert.Contains(t, out, "Unresolved type reference.")
	assert.Contains(t, out, "item=/Sat/Bus/Ghost")
	assert.Contains(t, out, "Duplicate alias namespaces, the first alias wins.")
	assert.Contains(t, out, "item=/Sat/Bus/Voltage")
	assert.Contains(t, out, "unresolved=1")
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"not xml", "this is not a document"},
		{"wrong root", `<Other name="X"/>`},
		{"unnamed root", `<SpaceSystem/>`},
		{"dot segment root", `<SpaceSystem name=".."/>`},
		{"delimiter in child name", `<SpaceSystem name="A"><SpaceSystem name="B/C"/></SpaceSystem>`},
		{"duplicate children", `<SpaceSystem name="A"><SpaceSystem name="B"/><SpaceSystem name="B"/></SpaceSystem>`},
		{"unknown charset", `<?xml version="1.0" encoding="EBCDIC"?><SpaceSystem name="A"/>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Latin1(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<SpaceSystem name="Sat" shortDescription="Température"/>`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(doc)
	require.NoError(t, err)

	tree, err := Load(context.Background(), strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "Température", tree.Root().ShortDescription)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, strings.NewReader(testutil.SampleDocument))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadFileAndResolveDocumentPath(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	dir := testutil.WriteFiles(t, map[string]string{
		"docs/sat.xml":   testutil.SampleDocument,
		"docs/notes.txt": "ignored",
	})

	files, err := ResolveDocumentPath(ctx, filepath.Join(dir, "docs"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "docs", "sat.xml")}, files)

	tree, err := LoadFile(ctx, files[0])
	require.NoError(t, err)
	assert.Equal(t, "/Sat", tree.Root().Path())

	_, err = LoadFile(ctx, filepath.Join(dir, "missing.xml"))
	assert.ErrorContains(t, err, "missing.xml")
}
