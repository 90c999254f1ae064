package pipeline

import (
	"sort"
	"strings"
)

// Group is one bucket of GroupSum: its key values, the sums of the value
// columns and the number of rows that fell into it.
type Group struct {
	Keys []string  `json:"keys"`
	Sums []float64 `json:"sums"`
	Rows int       `json:"rows"`
}

// TopK returns the k rows with the largest values, descending. Ties keep input
// order and rows without a value are skipped, so the result has min(k, n) rows
// where n counts the rows that have a value.
func TopK[T any](rows []T, k int, value func(T) (float64, bool)) []T {
	if k <= 0 {
		return []T{}
	}

	type scored struct {
		row T
		v   float64
	}
	candidates := make([]scored, 0, len(rows))
	for _, r := range rows {
		if v, ok := value(r); ok {
			candidates = append(candidates, scored{row: r, v: v})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].v > candidates[j].v
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = candidates[i].row
	}
	return out
}

const keySep = "\x1f"

// GroupSum groups rows by the key columns and sums the value columns. Groups
// come out in order of first appearance; empty input gives an empty result.
func GroupSum[T any](rows []T, keys func(T) []string, values func(T) []float64) []Group {
	out := make([]Group, 0)
	index := make(map[string]int)
	for _, r := range rows {
		ks := keys(r)
		vs := values(r)
		id := strings.Join(ks, keySep)

		pos, ok := index[id]
		if !ok {
			pos = len(out)
			index[id] = pos
			out = append(out, Group{
				Keys: append([]string(nil), ks...),
				Sums: make([]float64, len(vs)),
			})
		}
		g := &out[pos]
		for i, v := range vs {
			if i < len(g.Sums) {
				g.Sums[i] += v
			}
		}
		g.Rows++
	}
	return out
}

// CountBy counts rows per key value, in order of first appearance.
func CountBy[T any](rows []T, key func(T) string) []Group {
	return GroupSum(rows,
		func(r T) []string { return []string{key(r)} },
		func(T) []float64 { return nil },
	)
}

// SortGroupsByRows orders groups by row count, largest first, stable on ties.
func SortGroupsByRows(groups []Group) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rows > out[j].Rows
	})
	return out
}

// Mean averages the known values; ok is false when none is known.
func Mean(values []*float64) (float64, bool) {
	sum, n := 0.0, 0
	for _, v := range values {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
