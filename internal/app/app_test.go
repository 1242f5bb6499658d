package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/CesarCoelho/xtcetools-sub001/internal/report"
	"github.com/CesarCoelho/xtcetools-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Documents: []string{"a.xml"}, Format: "yaml"}, ""},
		{"resolve only", Config{Resolve: "/Sat:Bus", Format: "json"}, ""},
		{"no documents", Config{Format: "yaml"}, "document path is required"},
		{"bad format", Config{Documents: []string{"a.xml"}, Format: "xml"}, "unknown report format"},
		{"bad resolve", Config{Resolve: "/Sat", Format: "yaml"}, "want CONTEXT:REF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestApp_RunReport(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"docs/sat.xml":   testutil.SampleDocument,
		"docs/sub/a.xml": `<SpaceSystem name="Alone"/>`,
	})
	var out, logs bytes.Buffer
	a := NewApp(&out, &logs, &Config{
		Documents: []string{filepath.Join(dir, "docs")},
		Format:    "json",
		LogLevel:  "debug",
	})

	require.NoError(t, a.Run(context.Background()))

	var reports []report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "/Sat", reports[0].Root)
	assert.Equal(t, filepath.Join(dir, "docs", "sat.xml"), reports[0].Document)
	assert.Equal(t, "/Alone", reports[1].Root)
	assert.Contains(t, logs.String(), "Found XTCE documents to process.")
}

func TestApp_RunResolve(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"sat.xml": testutil.SampleDocument})
	doc := filepath.Join(dir, "sat.xml")

	var out bytes.Buffer
	a := NewApp(&out, &bytes.Buffer{}, &Config{
		Documents: []string{doc},
		Format:    "yaml",
		Resolve:   "/Sat/Bus/Heater:../Voltage",
	})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t,
		"/Sat/Bus/Voltage\n"+doc+": parameter /Sat/Bus/Voltage (Bus voltage) initial=5.5\n",
		out.String())

	out.Reset()
	a = NewApp(&out, &bytes.Buffer{}, &Config{Format: "yaml", Resolve: "/Sat:../../X"})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes-root")
}

func TestApp_LoadErrors(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"broken.xml": "<SpaceSystem"})

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{Documents: []string{filepath.Join(dir, "missing")}, Format: "yaml"})
	_, err := a.Load(context.Background())
	assert.ErrorContains(t, err, "failed to resolve document path")

	a = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{Documents: []string{filepath.Join(dir, "broken.xml")}, Format: "yaml"})
	_, err = a.Load(context.Background())
	assert.ErrorContains(t, err, "broken.xml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{Documents: []string{dir}, Format: "yaml"})
	_, err = a.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
