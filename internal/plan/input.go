package plan

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SundayTheme 周日固定主题（无用户输入）
const SundayTheme = "OFF / PLANNING"

// Themes 周一至周六的每日主题
type Themes struct {
	Monday    string `json:"monday" toml:"monday"`
	Tuesday   string `json:"tuesday" toml:"tuesday"`
	Wednesday string `json:"wednesday" toml:"wednesday"`
	Thursday  string `json:"thursday" toml:"thursday"`
	Friday    string `json:"friday" toml:"friday"`
	Saturday  string `json:"saturday" toml:"saturday"`
}

// For 返回指定星期的主题；周日恒为 SundayTheme
func (t Themes) For(d time.Weekday) string {
	switch d {
	case time.Monday:
		return t.Monday
	case time.Tuesday:
		return t.Tuesday
	case time.Wednesday:
		return t.Wednesday
	case time.Thursday:
		return t.Thursday
	case time.Friday:
		return t.Friday
	case time.Saturday:
		return t.Saturday
	default:
		return SundayTheme
	}
}

// Targets 每日 KPI 目标
type Targets struct {
	SIM   int `json:"sim" toml:"sim"`
	Fiber int `json:"fiber" toml:"fiber"`
	Visit int `json:"visit" toml:"visit"`
}

// Weightings 指标权重（百分比），应合计 100，但只做提示不做拦截
type Weightings struct {
	Mobility int `json:"mobility" toml:"mobility"`
	Fiber    int `json:"fiber" toml:"fiber"`
	Process  int `json:"process" toml:"process"`
}

// Input 一次生成所需的全部输入，按值传递，生成过程中不修改
type Input struct {
	Year    int
	Month   time.Month
	Themes  Themes
	Targets Targets
	Weights Weightings
}

// DefaultThemes 表单默认主题
func DefaultThemes() Themes {
	return Themes{
		Monday:    "Urban / High Volume",
		Tuesday:   "Semi-Urban / Devices",
		Wednesday: "Rural / Low Base",
		Thursday:  "FIBER FOCUS",
		Friday:    "Mixed / Retention",
		Saturday:  "Review & Cleanup",
	}
}

// DefaultInput 表单默认输入
func DefaultInput() Input {
	return Input{
		Year:    2026,
		Month:   time.February,
		Themes:  DefaultThemes(),
		Targets: Targets{SIM: 15, Fiber: 5, Visit: 20},
		Weights: Weightings{Mobility: 50, Fiber: 30, Process: 20},
	}
}

// MonthNames 十二个月的英文全称（January..December）
func MonthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

// ParseMonth 解析月份：英文全称/缩写（不区分大小写）或 1-12 数字
func ParseMonth(s string) (time.Month, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("month is empty")
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(v, name) || strings.EqualFold(v, name[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month: %q", s)
}
