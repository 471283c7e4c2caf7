package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/exporter"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

func parseGenerateFlags(t *testing.T, args ...string) (*pflag.FlagSet, generateFlags) {
	t.Helper()
	var g generateFlags
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	registerGenerateFlags(fs, &g)
	require.NoError(t, fs.Parse(args))
	return fs, g
}

func TestGenerateFlags_OnlyChangedOverride(t *testing.T) {
	fs, g := parseGenerateFlags(t,
		"--month", "feb",
		"--theme-thursday", "FIBER FOCUS",
		"--target-sim", "0",
		"--weight-process", "25",
	)

	in, err := g.apply(fs, plan.DefaultInput())
	require.NoError(t, err)

	assert.Equal(t, 2026, in.Year)
	assert.Equal(t, time.February, in.Month)
	assert.Equal(t, "FIBER FOCUS", in.Themes.Thursday)
	assert.Equal(t, "Urban / High Volume", in.Themes.Monday)
	assert.Equal(t, 0, in.Targets.SIM)
	assert.Equal(t, 5, in.Targets.Fiber)
	assert.Equal(t, plan.Weightings{Mobility: 50, Fiber: 30, Process: 25}, in.Weights)
}

func TestGenerateFlags_BadMonth(t *testing.T) {
	fs, g := parseGenerateFlags(t, "--month", "Smarch")
	_, err := g.apply(fs, plan.DefaultInput())
	assert.Error(t, err)
}

func TestWritePlan(t *testing.T) {
	in := plan.DefaultInput()
	in.Weights.Process = 25
	dir := filepath.Join(t.TempDir(), "exports")

	path, g, err := writePlan(exporter.NewExporter(""), in, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PJP_February_2026.xlsx"), path)
	require.Len(t, g.Warnings, 1)
	assert.ErrorIs(t, g.Warnings[0], plan.ErrWeightingMismatch)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(plan.SheetScorecard, "D6")
	require.NoError(t, err)
	assert.Equal(t, "25%", got)
}
