package todos

import "math"

// Progress is the share of completed items in percent, rounded to two
// decimals. An empty list has zero progress.
func Progress(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(completed) / float64(total) * 100
	return math.Round(pct*100) / 100
}

func WithProgress(list TodoList) ListView {
	return ListView{
		TodoList: list,
		Progress: Progress(list.CompletedCount, list.TotalCount),
	}
}
