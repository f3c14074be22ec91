package catalog

import (
	"fmt"
	"sort"

	"hipphone/internal/model"
)

// TieBreaker 多行匹配时的取舍策略
type TieBreaker interface {
	Name() string
	// Pick 从按原始顺序排列的候选中选出一行，candidates 非空
	Pick(candidates []model.Record) model.Record
}

const (
	TieBreakMaxSubsidy = "max_subsidy"
	TieBreakFirstRow   = "first_row"
)

var (
	// MaxSubsidy 取补贴最大的一行，相同时取最先出现的
	MaxSubsidy TieBreaker = maxSubsidy{}
	// FirstRow 取最先出现的一行
	FirstRow TieBreaker = firstRow{}
)

type maxSubsidy struct{}

func (maxSubsidy) Name() string { return TieBreakMaxSubsidy }

func (maxSubsidy) Pick(candidates []model.Record) model.Record {
	sorted := make([]model.Record, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Subsidy > sorted[j].Subsidy
	})
	return sorted[0]
}

type firstRow struct{}

func (firstRow) Name() string { return TieBreakFirstRow }

func (firstRow) Pick(candidates []model.Record) model.Record {
	return candidates[0]
}

// TieBreakerByName 按配置名称取策略，空字符串为默认策略
func TieBreakerByName(name string) (TieBreaker, error) {
	switch name {
	case "", TieBreakMaxSubsidy:
		return MaxSubsidy, nil
	case TieBreakFirstRow:
		return FirstRow, nil
	}
	return nil, fmt.Errorf("unknown tie-break strategy: %q", name)
}
