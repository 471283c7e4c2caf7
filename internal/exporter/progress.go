package exporter

import "fmt"

// 导出阶段
const (
	StageOpen    = "open"
	StageSheet   = "sheet"
	StageArrange = "arrange"
	StageWrite   = "write"
	StageDone    = "done"
)

// ProgressEvent 导出进度事件；Sheet 仅在 StageSheet 阶段有值
type ProgressEvent struct {
	Percent int
	Stage   string
	Sheet   string
	Message string
}

// progressTracker 按报表表数把 10-90 的区间均分给各工作表
type progressTracker struct {
	fn     func(ProgressEvent)
	sheets int
}

func newProgressTracker(fn func(ProgressEvent), sheets int) *progressTracker {
	return &progressTracker{fn: fn, sheets: sheets}
}

func (p *progressTracker) emit(percent int, stage, sheet, msg string) {
	if p == nil || p.fn == nil {
		return
	}
	p.fn(ProgressEvent{
		Percent: min(max(percent, 0), 100),
		Stage:   stage,
		Sheet:   sheet,
		Message: msg,
	})
}

func (p *progressTracker) open(fromTemplate bool) {
	msg := "新建工作簿"
	if fromTemplate {
		msg = "打开模板"
	}
	p.emit(0, StageOpen, "", msg)
}

// sheet 第 i 张表（从 0 开始）开始写入
func (p *progressTracker) sheet(i int, name string, rows int) {
	p.emit(10+i*80/max(p.sheets, 1), StageSheet, name, fmt.Sprintf("写入 %s（%d 行）", name, rows))
}

func (p *progressTracker) arrange() { p.emit(90, StageArrange, "", "整理表顺序") }
func (p *progressTracker) write()   { p.emit(95, StageWrite, "", "生成文件") }
func (p *progressTracker) done()    { p.emit(100, StageDone, "", "完成") }
