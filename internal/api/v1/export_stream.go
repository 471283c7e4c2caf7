package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/exporter"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

type exportProgressEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ExportStream 导出 Excel（SSE 进度 + 完成后提供下载地址）
// POST /api/plan/export/stream
func (h *Handler) ExportStream(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	send := func(event exportProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	g := h.generate(in)
	send(exportProgressEvent{
		Type:    "start",
		Message: "开始导出",
		Data: map[string]any{
			"year":     in.Year,
			"month":    in.Month.String(),
			"warnings": g.WarningMessages(),
		},
		Timestamp: time.Now(),
	})

	lastPercent := -1
	progressFn := func(p exporter.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(exportProgressEvent{
			Type:      "progress",
			Message:   p.Message,
			Data:      map[string]any{"percent": p.Percent, "stage": p.Stage, "sheet": p.Sheet},
			Timestamp: time.Now(),
		})
	}

	data, err := h.exporter.ExportBytes(exporter.ExportOptions{
		Report:   g.Report,
		Progress: progressFn,
	})
	if err != nil {
		h.log.WithError(err).Error("export failed")
		send(exportProgressEvent{
			Type:      "error",
			Message:   "导出失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}

	fileName := plan.FileName(in)
	token := h.downloads.put(data, fileName, h.cfg.Export.DownloadTTL())

	send(exportProgressEvent{
		Type:    "done",
		Message: "导出完成",
		Data: map[string]any{
			"percent":     100,
			"fileName":    fileName,
			"downloadUrl": fmt.Sprintf("/api/export/download/%s", token),
		},
		Timestamp: time.Now(),
	})
}

// DownloadExport 下载导出的 Excel 文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	c.Header("Content-Disposition", buildExportContentDisposition(item.fileName))
	c.Data(http.StatusOK, exporter.ContentType, item.data)
}
