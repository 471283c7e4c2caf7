package plan

import (
	"fmt"
	"time"
)

// DateLayout 日历日期格式，例如 05-Feb-26
const DateLayout = "02-Jan-06"

// CalendarRow 月计划中的一天；Actual/Remarks 留空供手工填写
type CalendarRow struct {
	Date     time.Time `json:"-"`
	DateText string    `json:"date"`
	Weekday  string    `json:"day"`
	Theme    string    `json:"theme"`
	Action   string    `json:"action"`
	Actual   string    `json:"actual"`
	Remarks  string    `json:"remarks"`
}

type dayRule func(in Input) (theme, action string)

func themed(d time.Weekday, action string) dayRule {
	return func(in Input) (string, string) {
		return in.Themes.For(d), action
	}
}

// dayRules 按星期分派主题与行动
var dayRules = map[time.Weekday]dayRule{
	time.Sunday: func(Input) (string, string) {
		return SundayTheme, "Weekly Review"
	},
	time.Monday: func(in Input) (string, string) {
		return in.Themes.Monday, fmt.Sprintf("Focus: %d Activations", in.Targets.SIM)
	},
	time.Tuesday:   themed(time.Tuesday, "Focus: Device Sales"),
	time.Wednesday: themed(time.Wednesday, "Focus: Rural Deep Dive"),
	time.Thursday: func(in Input) (string, string) {
		return in.Themes.Thursday, fmt.Sprintf("Focus: %d Fiber Leads", in.Targets.Fiber)
	},
	time.Friday:   themed(time.Friday, "Focus: Retention"),
	time.Saturday: themed(time.Saturday, "Focus: Hygiene Check"),
}

// DaysIn 返回某年某月的天数：取下月 1 日再减一天（12 月滚到次年 1 月）
func DaysIn(year int, month time.Month) int {
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return next.AddDate(0, 0, -1).Day()
}

// MonthCalendar 展开所选月份的每一天（1 日至月末，升序）
func MonthCalendar(in Input) []CalendarRow {
	first := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.UTC)
	n := DaysIn(in.Year, in.Month)

	rows := make([]CalendarRow, 0, n)
	for i := 0; i < n; i++ {
		d := first.AddDate(0, 0, i)
		theme, action := dayRules[d.Weekday()](in)
		rows = append(rows, CalendarRow{
			Date:     d,
			DateText: d.Format(DateLayout),
			Weekday:  d.Weekday().String(),
			Theme:    theme,
			Action:   action,
		})
	}
	return rows
}
