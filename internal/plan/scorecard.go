package plan

import "fmt"

// 指标类别
const (
	CategoryInputs  = "INPUTS"
	CategoryOutputs = "OUTPUTS"
	CategoryQuality = "QUALITY"
)

// ScorecardRow 记分卡一行；Target 为 int 或 string
type ScorecardRow struct {
	Category  string `json:"category"`
	Parameter string `json:"parameter"`
	Target    any    `json:"target"`
	Weightage string `json:"weightage"`
}

// Scorecard 生成固定 5 行的记分卡
func Scorecard(in Input) []ScorecardRow {
	return []ScorecardRow{
		{Category: CategoryInputs, Parameter: "Store Visits", Target: in.Targets.Visit, Weightage: "-"},
		{Category: CategoryInputs, Parameter: "Time in Market", Target: "8 Hours", Weightage: "-"},
		{Category: CategoryOutputs, Parameter: "SIM Activations", Target: in.Targets.SIM, Weightage: percent(in.Weights.Mobility)},
		{Category: CategoryOutputs, Parameter: "Fiber Leads", Target: in.Targets.Fiber, Weightage: percent(in.Weights.Fiber)},
		{Category: CategoryQuality, Parameter: "Quality Score", Target: "100%", Weightage: percent(in.Weights.Process)},
	}
}

func percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}
