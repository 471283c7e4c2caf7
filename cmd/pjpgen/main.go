package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/config"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pjpgen",
	Short: "Automated PJP & sales planner",
	Long: `pjpgen builds a Permanent Journey Plan workbook from a handful of inputs.

The workbook has three sheets: Weekly Framework, Month Plan and Scorecard.
Run "pjpgen serve" for the web form or "pjpgen generate" to write a file directly.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config.toml 路径（默认为可执行文件同目录）")
	rootCmd.AddCommand(serveCmd, generateCmd)
}

// loadConfig 加载配置并初始化日志
func loadConfig() (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(configPath)
	if err != nil {
		return nil, info, fmt.Errorf("加载配置失败: %w", err)
	}
	if err := logging.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, info, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, info, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
