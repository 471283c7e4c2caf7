package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/config"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/exporter"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/logging"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// Handler PJP API 处理器
type Handler struct {
	cfg       *config.AppConfig
	defaults  plan.Input
	exporter  *exporter.Exporter
	downloads *exportDownloadStore
	log       *logrus.Logger
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig) (*Handler, error) {
	defaults, err := cfg.Defaults.Input()
	if err != nil {
		return nil, err
	}
	return &Handler{
		cfg:       cfg,
		defaults:  defaults,
		exporter:  exporter.NewExporter(cfg.Export.TemplatePath),
		downloads: newExportDownloadStore(),
		log:       logging.Log,
	}, nil
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 表单选项与默认值
	router.GET("/months", h.ListMonths)
	router.GET("/defaults", h.GetDefaults)

	// 预览
	router.POST("/plan/preview", h.Preview)

	// 导出
	router.POST("/plan/export", h.Export)
	router.POST("/plan/export/stream", h.ExportStream)
	router.GET("/export/download/:token", h.DownloadExport)
}
