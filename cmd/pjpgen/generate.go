package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/config"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/exporter"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/logging"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a PJP workbook to disk",
	Long: `Generate the Weekly Framework, Month Plan and Scorecard sheets and write
them to PJP_<Month>_<Year>.xlsx. Values not given on the command line come
from the [defaults] section of config.toml.

A weighting total other than 100 is reported but does not stop the export.`,
	RunE: runGenerate,
}

// generateFlags 命令行输入（仅覆盖显式给出的项）
type generateFlags struct {
	year    int
	month   string
	out     string
	themes  plan.Themes
	targets plan.Targets
	weights plan.Weightings
}

var genFlags generateFlags

func init() {
	registerGenerateFlags(generateCmd.Flags(), &genFlags)
}

func registerGenerateFlags(fs *pflag.FlagSet, g *generateFlags) {
	fs.IntVar(&g.year, "year", 0, "年份")
	fs.StringVar(&g.month, "month", "", "月份（名称或 1-12）")
	fs.StringVarP(&g.out, "out", "o", "", "输出目录（默认 export.output_dir）")

	fs.StringVar(&g.themes.Monday, "theme-monday", "", "Monday theme")
	fs.StringVar(&g.themes.Tuesday, "theme-tuesday", "", "Tuesday theme")
	fs.StringVar(&g.themes.Wednesday, "theme-wednesday", "", "Wednesday theme")
	fs.StringVar(&g.themes.Thursday, "theme-thursday", "", "Thursday theme")
	fs.StringVar(&g.themes.Friday, "theme-friday", "", "Friday theme")
	fs.StringVar(&g.themes.Saturday, "theme-saturday", "", "Saturday theme")

	fs.IntVar(&g.targets.SIM, "target-sim", 0, "Daily SIM target")
	fs.IntVar(&g.targets.Fiber, "target-fiber", 0, "Daily fiber leads")
	fs.IntVar(&g.targets.Visit, "target-visit", 0, "Daily store visits")

	fs.IntVar(&g.weights.Mobility, "weight-mobility", 0, "Mobility (SIM/MNP) %")
	fs.IntVar(&g.weights.Fiber, "weight-fiber", 0, "Fiber/Home %")
	fs.IntVar(&g.weights.Process, "weight-process", 0, "Process/Hygiene %")
}

// apply 在默认输入上叠加显式给出的命令行参数
func (g generateFlags) apply(fs *pflag.FlagSet, in plan.Input) (plan.Input, error) {
	if fs.Changed("year") {
		in.Year = g.year
	}
	if fs.Changed("month") {
		m, err := plan.ParseMonth(g.month)
		if err != nil {
			return in, err
		}
		in.Month = m
	}

	strs := map[string]struct {
		dst *string
		src string
	}{
		"theme-monday":    {&in.Themes.Monday, g.themes.Monday},
		"theme-tuesday":   {&in.Themes.Tuesday, g.themes.Tuesday},
		"theme-wednesday": {&in.Themes.Wednesday, g.themes.Wednesday},
		"theme-thursday":  {&in.Themes.Thursday, g.themes.Thursday},
		"theme-friday":    {&in.Themes.Friday, g.themes.Friday},
		"theme-saturday":  {&in.Themes.Saturday, g.themes.Saturday},
	}
	for name, v := range strs {
		if fs.Changed(name) {
			*v.dst = v.src
		}
	}

	ints := map[string]struct {
		dst *int
		src int
	}{
		"target-sim":      {&in.Targets.SIM, g.targets.SIM},
		"target-fiber":    {&in.Targets.Fiber, g.targets.Fiber},
		"target-visit":    {&in.Targets.Visit, g.targets.Visit},
		"weight-mobility": {&in.Weights.Mobility, g.weights.Mobility},
		"weight-fiber":    {&in.Weights.Fiber, g.weights.Fiber},
		"weight-process":  {&in.Weights.Process, g.weights.Process},
	}
	for name, v := range ints {
		if fs.Changed(name) {
			*v.dst = v.src
		}
	}
	return in, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	defaults, err := cfg.Defaults.Input()
	if err != nil {
		return err
	}
	in, err := genFlags.apply(cmd.Flags(), defaults)
	if err != nil {
		return err
	}

	outDir := genFlags.out
	if outDir == "" {
		if outDir, err = config.EnsureOutputDir(cfg); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	path, g, err := writePlan(exporter.NewExporter(cfg.Export.TemplatePath), in, outDir)
	if err != nil {
		return err
	}
	for _, w := range g.Warnings {
		logging.Log.Warn(w.Error())
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// writePlan 生成报表并写入 outDir，返回文件路径
func writePlan(exp *exporter.Exporter, in plan.Input, outDir string) (string, plan.Generation, error) {
	g := plan.Generate(in)

	data, err := exp.ExportBytes(exporter.ExportOptions{Report: g.Report})
	if err != nil {
		return "", g, fmt.Errorf("导出失败: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", g, err
	}
	path := filepath.Join(outDir, plan.FileName(in))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", g, fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return path, g, nil
}
