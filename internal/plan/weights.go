package plan

import (
	"errors"
	"fmt"
)

// ErrWeightingMismatch 权重合计不为 100（仅提示，不阻断生成）
var ErrWeightingMismatch = errors.New("weighting mismatch")

// WeightingMismatchError 携带实际合计值
type WeightingMismatchError struct {
	Total int
}

func (e *WeightingMismatchError) Error() string {
	return fmt.Sprintf("Total Weightage is %d%%. It must be 100%%.", e.Total)
}

func (e *WeightingMismatchError) Is(target error) bool {
	return target == ErrWeightingMismatch
}

// Total 权重合计
func (w Weightings) Total() int {
	return w.Mobility + w.Fiber + w.Process
}

// Check 合计不为 100 时返回 *WeightingMismatchError
func (w Weightings) Check() error {
	if total := w.Total(); total != 100 {
		return &WeightingMismatchError{Total: total}
	}
	return nil
}
