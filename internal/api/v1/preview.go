package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// previewDays 预览展示的天数
const previewDays = 5

type previewResponse struct {
	Year        int                 `json:"year"`
	Month       string              `json:"month"`
	FileName    string              `json:"fileName"`
	WeightTotal int                 `json:"weightTotal"`
	Warnings    []string            `json:"warnings"`
	Weekly      []plan.WeeklyRow    `json:"weekly"`
	Calendar    []plan.CalendarRow  `json:"calendar"`
	Scorecard   []plan.ScorecardRow `json:"scorecard"`
	Preview     []plan.CalendarRow  `json:"preview"`
}

// Preview 生成三张表用于页面预览
// POST /api/plan/preview
func (h *Handler) Preview(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	g := h.generate(in)

	c.JSON(http.StatusOK, previewResponse{
		Year:        in.Year,
		Month:       in.Month.String(),
		FileName:    plan.FileName(in),
		WeightTotal: in.Weights.Total(),
		Warnings:    g.WarningMessages(),
		Weekly:      g.Weekly,
		Calendar:    g.Month,
		Scorecard:   g.Scorecard,
		Preview:     g.Month[:min(previewDays, len(g.Month))],
	})
}
