// Package report derives filtered subsets and aggregates from the
// transaction collection. Every function is pure: it never mutates its
// input and recomputes deterministically from current state.
//
// Date handling is fail-soft: a record whose date cannot match a month
// or week range simply falls out of date-keyed results rather than
// raising an error.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fbmobile/internal/core"
	"fbmobile/internal/period"
)

// DayGroup is one bucket of the group-by-date partition.
type DayGroup struct {
	Date  string
	Items []core.Transaction
}

// MonthTotal is one month's summed profit in a monthly series.
type MonthTotal struct {
	Month period.YearMonth
	Total decimal.Decimal
}

// FilterByMonth keeps transactions whose date falls in the given
// "YYYY-MM" month, comparing the date's year-month prefix. An empty
// month is the identity filter.
func FilterByMonth(txs []core.Transaction, month string) []core.Transaction {
	if month == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if len(t.Date) >= 7 && t.Date[:7] == month {
			out = append(out, t)
		}
	}
	return out
}

// FilterByWeek keeps transactions whose date lies within [start, end]
// inclusive, comparing ISO date strings. Empty bounds mean no week is
// selected and the input passes through unchanged.
func FilterByWeek(txs []core.Transaction, start, end string) []core.Transaction {
	if start == "" || end == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date >= start && t.Date <= end {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCategory keeps exact category matches; empty is the identity.
func FilterByCategory(txs []core.Transaction, category core.Category) []core.Transaction {
	if category == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterByModel keeps exact brand matches; empty is the identity.
func FilterByModel(txs []core.Transaction, model string) []core.Transaction {
	if model == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Model == model {
			out = append(out, t)
		}
	}
	return out
}

// Search keeps transactions where any of model, category, repair detail
// or date contains the query, case-insensitively. An empty query matches
// everything.
func Search(txs []core.Transaction, query string) []core.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return txs
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if matchesQuery(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesQuery(t core.Transaction, q string) bool {
	for _, field := range []string{
		t.Model,
		string(t.Category),
		t.Category.Label(),
		t.Detail,
		t.Date,
	} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GroupByDate partitions the list into day buckets keyed by the exact
// date string. Buckets appear in encounter order and each bucket keeps
// its relative insertion order.
func GroupByDate(txs []core.Transaction) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, t := range txs {
		i, ok := index[t.Date]
		if !ok {
			i = len(groups)
			index[t.Date] = i
			groups = append(groups, DayGroup{Date: t.Date})
		}
		groups[i].Items = append(groups[i].Items, t)
	}
	return groups
}

// SortGroupsDesc orders day buckets newest-first for display.
func SortGroupsDesc(groups []DayGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
}

// DailyNetIncome sums the profit of transactions on the given date.
func DailyNetIncome(txs []core.Transaction, date string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Date == date {
			total = total.Add(t.Profit)
		}
	}
	return total
}

// MonthlySeries sums profit per month across the inclusive [from, to]
// range, ascending by calendar order.
func MonthlySeries(txs []core.Transaction, from, to period.YearMonth) []MonthTotal {
	if from.After(to) {
		return nil
	}
	var series []MonthTotal
	for m := from; !m.After(to); m = m.Next() {
		total := decimal.Zero
		for _, t := range FilterByMonth(txs, m.String()) {
			total = total.Add(t.Profit)
		}
		series = append(series, MonthTotal{Month: m, Total: total})
	}
	return series
}

// SeriesTotal sums a monthly series into the cumulative dashboard total.
func SeriesTotal(series []MonthTotal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range series {
		total = total.Add(m.Total)
	}
	return total
}

// DistinctModels collects suggestion values for the device-model input:
// each transaction contributes its device model, falling back to its
// brand. Values are trimmed, blanks excluded, and deduplicated
// case-sensitively in encounter order.
func DistinctModels(txs []core.Transaction) []string {
	seen := make(map[string]struct{})
	var models []string
	for _, t := range txs {
		v := t.DeviceModel
		if v == "" {
			v = t.Model
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		models = append(models, v)
	}
	return models
}
