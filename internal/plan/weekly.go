package plan

import (
	"fmt"
	"time"
)

// WeeklyRow 周框架中的一行
type WeeklyRow struct {
	Day           string `json:"day"`
	Theme         string `json:"theme"`
	PrimaryKPI    string `json:"primaryKpi"`
	SuccessMetric string `json:"successMetric"`
}

// workWeek 周框架固定行序
var workWeek = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// primaryKPIs 主要 KPI 静态表，与用户输入无关
var primaryKPIs = map[time.Weekday]string{
	time.Monday:    "Gross Adds, MNP",
	time.Tuesday:   "Devices, MNP Laps",
	time.Wednesday: "Rural Activation",
	time.Thursday:  "Home/Fiber Leads",
	time.Friday:    "Retention, Churn",
	time.Saturday:  "Hygiene, Reports",
}

// WeeklyFramework 生成周一至周六固定 6 行的周框架
func WeeklyFramework(in Input) []WeeklyRow {
	rows := make([]WeeklyRow, 0, len(workWeek))
	for _, d := range workWeek {
		rows = append(rows, WeeklyRow{
			Day:           d.String(),
			Theme:         in.Themes.For(d),
			PrimaryKPI:    primaryKPIs[d],
			SuccessMetric: successMetric(d, in.Targets),
		})
	}
	return rows
}

// successMetric 按星期计算成功指标；80%/50% 取整向零截断
func successMetric(d time.Weekday, t Targets) string {
	switch d {
	case time.Monday:
		return fmt.Sprintf("%d SIMs", t.SIM)
	case time.Tuesday:
		return fmt.Sprintf("%d SIMs", t.SIM*4/5)
	case time.Wednesday:
		return fmt.Sprintf("%d SIMs", t.SIM/2)
	case time.Thursday:
		return fmt.Sprintf("%d Leads", t.Fiber)
	case time.Friday:
		return "Churn < 1%"
	case time.Saturday:
		return "100% Reporting"
	default:
		return ""
	}
}
