package exporter

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/plan"
)

func scenarioReport() plan.Report {
	in := plan.DefaultInput()
	in.Year, in.Month = 2026, time.February
	return plan.Generate(in).Report
}

func TestExport_SheetsInOrder(t *testing.T) {
	f, err := NewExporter("").Export(ExportOptions{Report: scenarioReport()})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	want := []string{plan.SheetWeekly, plan.SheetMonth, plan.SheetScorecard}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheet[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestExport_RoundTripValues(t *testing.T) {
	data, err := NewExporter("").ExportBytes(ExportOptions{Report: scenarioReport()})
	if err != nil {
		t.Fatalf("export bytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(plan.SheetMonth)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 29 {
		t.Fatalf("month plan rows=%d, want 29 (header + 28 days)", len(rows))
	}
	if rows[0][3] != "Critical Actions" {
		t.Fatalf("header D1=%q", rows[0][3])
	}
	if rows[5][0] != "05-Feb-26" || rows[5][2] != "FIBER FOCUS" || rows[5][3] != "Focus: 5 Fiber Leads" {
		t.Fatalf("unexpected 2026-02-05 row: %v", rows[5])
	}

	for _, tc := range []struct {
		sheet string
		cell  string
		want  string
	}{
		{sheet: plan.SheetWeekly, cell: "D3", want: "12 SIMs"},
		{sheet: plan.SheetWeekly, cell: "D4", want: "7 SIMs"},
		{sheet: plan.SheetScorecard, cell: "C4", want: "15"},
		{sheet: plan.SheetScorecard, cell: "D4", want: "50%"},
		{sheet: plan.SheetScorecard, cell: "C3", want: "8 Hours"},
	} {
		got, err := f.GetCellValue(tc.sheet, tc.cell)
		if err != nil {
			t.Fatalf("get %s!%s: %v", tc.sheet, tc.cell, err)
		}
		if got != tc.want {
			t.Fatalf("%s!%s=%q, want %q", tc.sheet, tc.cell, got, tc.want)
		}
	}

	typ, err := f.GetCellType(plan.SheetScorecard, "C2")
	if err != nil {
		t.Fatalf("cell type: %v", err)
	}
	if typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString {
		t.Fatalf("store visits target should be numeric, got type %v", typ)
	}
}

func TestExport_DefaultLayout(t *testing.T) {
	f, err := NewExporter("").Export(ExportOptions{Report: scenarioReport()})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	width, err := f.GetColWidth(plan.SheetWeekly, "B")
	if err != nil {
		t.Fatalf("col width: %v", err)
	}
	if width != defaultColWide {
		t.Fatalf("col width=%v, want %v", width, defaultColWide)
	}

	styleID, err := f.GetCellStyle(plan.SheetScorecard, "A1")
	if err != nil {
		t.Fatalf("cell style: %v", err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("get style: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Fatalf("header font not bold: %+v", style.Font)
	}
	if style.Fill.Pattern != 1 || len(style.Fill.Color) != 1 {
		t.Fatalf("header fill=%+v, want solid pattern", style.Fill)
	}
}

func TestExport_TemplateKeepsExtraSheetsAndClearsStaleRows(t *testing.T) {
	tmpl := excelize.NewFile()
	if err := tmpl.SetSheetName("Sheet1", "Cover"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	// 模板中的表顺序与报表相反，且缺少 Weekly Framework
	for _, name := range []string{plan.SheetScorecard, plan.SheetMonth} {
		if _, err := tmpl.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}
	// 旧数据多于 2 月天数，G 列为报表之外的备注列
	for r := 1; r <= 40; r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := tmpl.SetCellValue(plan.SheetMonth, cell, "stale"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		note, _ := excelize.CoordinatesToCellName(7, r)
		if err := tmpl.SetCellValue(plan.SheetMonth, note, "old note"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := tmpl.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	_ = tmpl.Close()

	var events []ProgressEvent
	f, err := NewExporter(path).Export(ExportOptions{
		Report:   scenarioReport(),
		Progress: func(p ProgressEvent) { events = append(events, p) },
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	if idx, _ := f.GetSheetIndex("Cover"); idx < 0 {
		t.Fatalf("template sheet Cover removed")
	}

	var order []string
	for _, name := range f.GetSheetList() {
		if name != "Cover" {
			order = append(order, name)
		}
	}
	want := []string{plan.SheetWeekly, plan.SheetMonth, plan.SheetScorecard}
	if strings.Join(order, "|") != strings.Join(want, "|") {
		t.Fatalf("sheet order=%v, want %v (all=%v)", order, want, f.GetSheetList())
	}
	if active := f.GetSheetName(f.GetActiveSheetIndex()); active != plan.SheetWeekly {
		t.Fatalf("active sheet=%q, want %q", active, plan.SheetWeekly)
	}

	got, _ := f.GetCellValue(plan.SheetMonth, "A30")
	if got != "" {
		t.Fatalf("A30=%q, want cleared", got)
	}
	got, _ = f.GetCellValue(plan.SheetMonth, "A2")
	if got != "01-Feb-26" {
		t.Fatalf("A2=%q, want 01-Feb-26", got)
	}
	for _, cell := range []string{"G2", "G29", "G40"} {
		if got, _ := f.GetCellValue(plan.SheetMonth, cell); got != "" {
			t.Fatalf("%s=%q, want cleared", cell, got)
		}
	}

	if len(events) == 0 || events[0].Percent != 0 || events[0].Stage != StageOpen {
		t.Fatalf("unexpected progress events: %+v", events)
	}
	var sheets []string
	for _, e := range events {
		if e.Stage == StageSheet {
			sheets = append(sheets, e.Sheet)
		}
	}
	if strings.Join(sheets, "|") != strings.Join(want, "|") {
		t.Fatalf("sheet progress=%v, want %v", sheets, want)
	}
}

func TestExport_MissingTemplate(t *testing.T) {
	_, err := NewExporter(filepath.Join(t.TempDir(), "missing.xlsx")).Export(ExportOptions{Report: scenarioReport()})
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestExportBytes_ProgressEndsDone(t *testing.T) {
	var events []ProgressEvent
	if _, err := NewExporter("").ExportBytes(ExportOptions{
		Report:   scenarioReport(),
		Progress: func(p ProgressEvent) { events = append(events, p) },
	}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("no progress events")
	}
	last := events[len(events)-1]
	if last.Percent != 100 || last.Stage != StageDone {
		t.Fatalf("last event=%+v, want 100/%s", last, StageDone)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Percent < events[i-1].Percent {
			t.Fatalf("progress went backwards: %+v", events)
		}
	}
}
