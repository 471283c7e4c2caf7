package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// Version 服务版本
const Version = "1.0.0"

// StatusResponse 系统状态响应
type StatusResponse struct {
	Service      string `json:"service"`
	Version      string `json:"version"`
	DefaultYear  int    `json:"defaultYear"`
	DefaultMonth string `json:"defaultMonth"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Service:      "pjpgen",
		Version:      Version,
		DefaultYear:  h.defaults.Year,
		DefaultMonth: h.defaults.Month.String(),
	})
}

type monthsResponse struct {
	Months  []string `json:"months"`
	MinYear int      `json:"minYear"`
	MaxYear int      `json:"maxYear"`
}

// ListMonths 月份与年份选项
// GET /api/months
func (h *Handler) ListMonths(c *gin.Context) {
	c.JSON(http.StatusOK, monthsResponse{
		Months:  plan.MonthNames(),
		MinYear: h.cfg.Form.MinYear,
		MaxYear: h.cfg.Form.MaxYear,
	})
}

// GetDefaults 表单默认值
// GET /api/defaults
func (h *Handler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, newPlanRequest(h.defaults))
}
