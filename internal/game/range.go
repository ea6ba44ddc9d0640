package game

import (
	"fmt"

	"github.com/palemoky/hi-lo/internal/apperrors"
)

// Range 猜数的闭区间，构造后不可变
type Range struct {
	Min int
	Max int
}

// NewRange 创建区间，要求 min < max 且至少包含 3 个数
// （保证"更高/更低/猜中"三种反馈都有意义）
func NewRange(min, max int) (Range, error) {
	if min >= max {
		return Range{}, apperrors.ErrInvalidRange
	}
	if max-min < 2 {
		return Range{}, apperrors.ErrRangeTooSmall
	}
	return Range{Min: min, Max: max}, nil
}

// Contains 判断 value 是否落在区间内（含边界）
func (r Range) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

// Size 区间内可取值的数量
func (r Range) Size() int {
	return r.Max - r.Min + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d - %d]", r.Min, r.Max)
}
