package plan

import "fmt"

// 报表工作表名称（顺序固定）
const (
	SheetWeekly    = "Weekly Framework"
	SheetMonth     = "Month Plan"
	SheetScorecard = "Scorecard"
)

var (
	weeklyHeader    = []string{"Day", "Market Focus", "Primary KPIs", "Daily Success Metrics"}
	monthHeader     = []string{"Date", "Day", "Theme", "Critical Actions", "Actual", "Remarks"}
	scorecardHeader = []string{"Metric Category", "KPI Parameter", "Target", "Weightage"}
)

// Sheet 一张命名表格：表头 + 数据行，单元格只含 string/int
type Sheet struct {
	Name   string   `json:"name"`
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

// Report 有序的命名表格集合
type Report struct {
	Sheets []Sheet `json:"sheets"`
}

// Sheet 按名称查找表格
func (r Report) Sheet(name string) (Sheet, bool) {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Assemble 将三张派生表按固定顺序装配为报表
func Assemble(weekly []WeeklyRow, month []CalendarRow, scorecard []ScorecardRow) Report {
	w := Sheet{Name: SheetWeekly, Header: cloneHeader(weeklyHeader), Rows: make([][]any, 0, len(weekly))}
	for _, r := range weekly {
		w.Rows = append(w.Rows, []any{r.Day, r.Theme, r.PrimaryKPI, r.SuccessMetric})
	}

	m := Sheet{Name: SheetMonth, Header: cloneHeader(monthHeader), Rows: make([][]any, 0, len(month))}
	for _, r := range month {
		m.Rows = append(m.Rows, []any{r.DateText, r.Weekday, r.Theme, r.Action, r.Actual, r.Remarks})
	}

	s := Sheet{Name: SheetScorecard, Header: cloneHeader(scorecardHeader), Rows: make([][]any, 0, len(scorecard))}
	for _, r := range scorecard {
		s.Rows = append(s.Rows, []any{r.Category, r.Parameter, r.Target, r.Weightage})
	}

	return Report{Sheets: []Sheet{w, m, s}}
}

func cloneHeader(h []string) []string {
	return append([]string(nil), h...)
}

// Generation 一次生成的结果
type Generation struct {
	Input     Input
	Weekly    []WeeklyRow
	Month     []CalendarRow
	Scorecard []ScorecardRow
	Report    Report
	// Warnings 提示性问题（目前仅权重合计），不影响导出
	Warnings []error
}

// Generate 从同一份输入独立派生三张表并装配报表
func Generate(in Input) Generation {
	g := Generation{
		Input:     in,
		Weekly:    WeeklyFramework(in),
		Month:     MonthCalendar(in),
		Scorecard: Scorecard(in),
	}
	g.Report = Assemble(g.Weekly, g.Month, g.Scorecard)
	if err := in.Weights.Check(); err != nil {
		g.Warnings = append(g.Warnings, err)
	}
	return g
}

// WarningMessages 提示信息文本
func (g Generation) WarningMessages() []string {
	out := make([]string, 0, len(g.Warnings))
	for _, w := range g.Warnings {
		out = append(out, w.Error())
	}
	return out
}

// FileName 导出文件名，例如 PJP_February_2026.xlsx
func FileName(in Input) string {
	return fmt.Sprintf("PJP_%s_%d.xlsx", in.Month, in.Year)
}
