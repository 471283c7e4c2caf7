package exporter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

// ContentType xlsx 的 MIME 类型
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// 默认版式：表头蓝底白字加边框，A:D 列宽 25
const (
	headerFill     = "#4F81BD"
	headerFont     = "#FFFFFF"
	defaultColWide = 25
)

// Exporter PJP 报表导出器
//
// 配置了模板时在模板上按表名填充数据（保留模板样式与列宽）；否则新建工作簿并套用默认版式。
type Exporter struct {
	templatePath string
}

// NewExporter 创建导出器
func NewExporter(templatePath string) *Exporter {
	return &Exporter{templatePath: templatePath}
}

// ExportOptions 导出选项
type ExportOptions struct {
	Report   plan.Report
	Progress func(ProgressEvent)
}

// Export 将报表写为工作簿，调用方负责 Close
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	total := len(opts.Report.Sheets)
	progress := newProgressTracker(opts.Progress, total)
	progress.open(strings.TrimSpace(e.templatePath) != "")

	f, fromTemplate, err := e.openWorkbook()
	if err != nil {
		return nil, err
	}

	for i, sheet := range opts.Report.Sheets {
		progress.sheet(i, sheet.Name, len(sheet.Rows))
		if err := writeSheet(f, sheet, fromTemplate); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入 %s 失败: %w", sheet.Name, err)
		}
	}

	progress.arrange()
	if !fromTemplate {
		if err := dropPlaceholderSheet(f, opts.Report); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	// 模板中的表顺序可能不同，按报表顺序重排（模板额外的表保留）
	if err := arrangeSheets(f, opts.Report); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("整理表顺序失败: %w", err)
	}
	if total > 0 {
		if idx, err := f.GetSheetIndex(opts.Report.Sheets[0].Name); err == nil && idx >= 0 {
			f.SetActiveSheet(idx)
		}
	}

	progress.write()
	return f, nil
}

// ExportBytes 导出并序列化为 xlsx 字节
func (e *Exporter) ExportBytes(opts ExportOptions) ([]byte, error) {
	f, err := e.Export(opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("序列化工作簿失败: %w", err)
	}
	newProgressTracker(opts.Progress, len(opts.Report.Sheets)).done()
	return buf.Bytes(), nil
}

func (e *Exporter) openWorkbook() (*excelize.File, bool, error) {
	if p := strings.TrimSpace(e.templatePath); p != "" {
		f, err := excelize.OpenFile(p)
		if err != nil {
			return nil, false, fmt.Errorf("打开模板失败: %w", err)
		}
		return f, true, nil
	}
	return excelize.NewFile(), false, nil
}

func writeSheet(f *excelize.File, sheet plan.Sheet, fromTemplate bool) error {
	created, err := ensureSheet(f, sheet.Name)
	if err != nil {
		return err
	}

	if fromTemplate && !created {
		if err := clearDataRows(f, sheet.Name, 2); err != nil {
			return err
		}
	}

	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
	}

	// 模板自带版式时不覆盖
	if fromTemplate && !created {
		return nil
	}
	return applyDefaultLayout(f, sheet.Name, len(sheet.Header))
}

func applyDefaultLayout(f *excelize.File, sheet string, cols int) error {
	if cols == 0 {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFont},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "D", defaultColWide); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// ensureSheet 确保工作表存在；返回是否为新建
func ensureSheet(f *excelize.File, name string) (bool, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return false, err
	}
	if idx >= 0 {
		return false, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return false, err
	}
	return true, nil
}

// dropPlaceholderSheet 删除新建工作簿自带且未被报表使用的 Sheet1
func dropPlaceholderSheet(f *excelize.File, report plan.Report) error {
	const placeholder = "Sheet1"
	if _, ok := report.Sheet(placeholder); ok {
		return nil
	}
	idx, err := f.GetSheetIndex(placeholder)
	if err != nil || idx < 0 {
		return err
	}
	if len(f.GetSheetList()) <= 1 {
		return nil
	}
	return f.DeleteSheet(placeholder)
}

// arrangeSheets 让报表各表按报表顺序相邻排列：从倒数第二张起依次移到后一张之前
func arrangeSheets(f *excelize.File, report plan.Report) error {
	for i := len(report.Sheets) - 2; i >= 0; i-- {
		if err := f.MoveSheet(report.Sheets[i].Name, report.Sheets[i+1].Name); err != nil {
			return err
		}
	}
	return nil
}
