package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// FileName 配置文件名（位于可执行文件同目录）
const FileName = "config.toml"

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Export   ExportConfig   `toml:"export"`
	Form     FormConfig     `toml:"form"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ExportConfig 导出配置
type ExportConfig struct {
	OutputDir          string `toml:"output_dir"`
	TemplatePath       string `toml:"template_path"`
	DownloadTTLMinutes int    `toml:"download_ttl_minutes"`
}

// DownloadTTL 下载链接有效期
func (c ExportConfig) DownloadTTL() time.Duration {
	if c.DownloadTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.DownloadTTLMinutes) * time.Minute
}

// FormConfig 表单取值范围
type FormConfig struct {
	MinYear int `toml:"min_year"`
	MaxYear int `toml:"max_year"`
}

// DefaultsConfig 表单默认值
type DefaultsConfig struct {
	Year    int             `toml:"year"`
	Month   string          `toml:"month"`
	Themes  plan.Themes     `toml:"themes"`
	Targets plan.Targets    `toml:"targets"`
	Weights plan.Weightings `toml:"weights"`
}

// Input 将默认值转换为生成输入
func (d DefaultsConfig) Input() (plan.Input, error) {
	month, err := plan.ParseMonth(d.Month)
	if err != nil {
		return plan.Input{}, fmt.Errorf("defaults.month: %w", err)
	}
	return plan.Input{
		Year:    d.Year,
		Month:   month,
		Themes:  d.Themes,
		Targets: d.Targets,
		Weights: d.Weights,
	}, nil
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	in := plan.DefaultInput()
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			OutputDir:          "exports",
			DownloadTTLMinutes: 10,
		},
		Form: FormConfig{
			MinYear: 2025,
			MaxYear: 2030,
		},
		Defaults: DefaultsConfig{
			Year:    in.Year,
			Month:   in.Month.String(),
			Themes:  in.Themes,
			Targets: in.Targets,
			Weights: in.Weights,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	server, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = server["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 默认配置文件路径
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, FileName)
}

// LoadConfigWithInfo 从指定路径加载配置（path 为空时使用可执行文件同目录的 config.toml）
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	case err != nil:
		return nil, info, err
	default:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, info, fmt.Errorf("解析 %s 失败: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if _, err := cfg.Defaults.Input(); err != nil {
		return nil, info, err
	}
	return cfg, info, nil
}

// LoadConfig 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	cfg, _, err := LoadConfigWithInfo(path)
	return cfg, err
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("PJP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PJP_OUTPUT_DIR"); v != "" {
		cfg.Export.OutputDir = v
	}
	if v := os.Getenv("PJP_TEMPLATE_PATH"); v != "" {
		cfg.Export.TemplatePath = v
	}
}

// SaveConfig 保存配置
func SaveConfig(cfg *AppConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureOutputDir 确保导出目录存在；相对路径以可执行文件目录为基准
func EnsureOutputDir(cfg *AppConfig) (string, error) {
	dir := cfg.Export.OutputDir
	if !filepath.IsAbs(dir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dir = filepath.Join(exeDir, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
