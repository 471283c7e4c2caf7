package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// monthValue 接受月份名称或 1-12 数字
type monthValue string

func (m *monthValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = monthValue(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("month must be a name or a number")
	}
	*m = monthValue(strconv.Itoa(n))
	return nil
}

type weightsRequest struct {
	Mobility int `json:"mobility" binding:"min=0,max=100"`
	Fiber    int `json:"fiber" binding:"min=0,max=100"`
	Process  int `json:"process" binding:"min=0,max=100"`
}

// planRequest 表单提交；未出现的字段沿用默认值
type planRequest struct {
	Year    int            `json:"year"`
	Month   monthValue     `json:"month"`
	Themes  plan.Themes    `json:"themes"`
	Targets plan.Targets   `json:"targets"`
	Weights weightsRequest `json:"weights"`
}

func newPlanRequest(defaults plan.Input) planRequest {
	return planRequest{
		Year:    defaults.Year,
		Month:   monthValue(defaults.Month.String()),
		Themes:  defaults.Themes,
		Targets: defaults.Targets,
		Weights: weightsRequest{
			Mobility: defaults.Weights.Mobility,
			Fiber:    defaults.Weights.Fiber,
			Process:  defaults.Weights.Process,
		},
	}
}

// bindInput 解析请求体并转换为生成输入；失败时已写出 400 响应
func (h *Handler) bindInput(c *gin.Context) (plan.Input, bool) {
	req := newPlanRequest(h.defaults)
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
			return plan.Input{}, false
		}
	}

	month, err := plan.ParseMonth(string(req.Month))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法月份: " + err.Error()})
		return plan.Input{}, false
	}
	if req.Year < h.cfg.Form.MinYear || req.Year > h.cfg.Form.MaxYear {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("年份超出范围 %d-%d", h.cfg.Form.MinYear, h.cfg.Form.MaxYear),
		})
		return plan.Input{}, false
	}

	return plan.Input{
		Year:    req.Year,
		Month:   month,
		Themes:  req.Themes,
		Targets: req.Targets,
		Weights: plan.Weightings{
			Mobility: req.Weights.Mobility,
			Fiber:    req.Weights.Fiber,
			Process:  req.Weights.Process,
		},
	}, true
}

// generate 生成报表并记录权重提示
func (h *Handler) generate(in plan.Input) plan.Generation {
	g := plan.Generate(in)
	for _, w := range g.Warnings {
		h.log.WithFields(logrus.Fields{
			"year":  in.Year,
			"month": in.Month.String(),
		}).Warn(w.Error())
	}
	return g
}
