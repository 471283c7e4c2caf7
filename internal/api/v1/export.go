package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/exporter"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// WarningHeader 导出响应中携带权重提示的响应头
const WarningHeader = "X-PJP-Warning"

// Export 导出 Excel（直接返回文件）
// POST /api/plan/export
func (h *Handler) Export(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	g := h.generate(in)

	data, err := h.exporter.ExportBytes(exporter.ExportOptions{Report: g.Report})
	if err != nil {
		h.log.WithError(err).Error("export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	if msgs := g.WarningMessages(); len(msgs) > 0 {
		c.Header(WarningHeader, strings.Join(msgs, "; "))
	}
	c.Header("Content-Disposition", buildExportContentDisposition(plan.FileName(in)))
	c.Data(http.StatusOK, exporter.ContentType, data)
}

func buildExportContentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fileName, url.PathEscape(fileName))
}
