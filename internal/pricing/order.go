package pricing

import "sort"

type orderable[T any] interface {
	withOrder(n int) T
}

// renumber rewrites order to match slice position, 1-based, so that after
// any move or delete the sequence stays contiguous with no gaps or
// duplicates.
func renumber[T orderable[T]](list []T) []T {
	out := make([]T, len(list))
	for i, item := range list {
		out[i] = item.withOrder(i + 1)
	}
	return out
}

func sortPlans(list []Plan) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
}

func sortFeatures(list []Feature) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
}

func sortCalculatorServices(list []CalculatorService) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
}

func sortCalculatorOptions(list []CalculatorOption) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
}
