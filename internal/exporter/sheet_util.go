package exporter

import (
	"github.com/xuri/excelize/v2"
)

// getSheetMaxColRow 返回已有数据的最大列/行
func getSheetMaxColRow(f *excelize.File, sheet string) (int, int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	maxCol := 0
	for _, r := range rows {
		maxCol = max(maxCol, len(r))
	}
	return maxCol, len(rows), nil
}

// clearDataRows 清空模板中 fromRow 及以下、已用列范围内的旧数据（保留单元格样式）
func clearDataRows(f *excelize.File, sheet string, fromRow int) error {
	maxCol, maxRow, err := getSheetMaxColRow(f, sheet)
	if err != nil {
		return err
	}
	for r := fromRow; r <= maxRow; r++ {
		for c := 1; c <= maxCol; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, ""); err != nil {
				return err
			}
		}
	}
	return nil
}
