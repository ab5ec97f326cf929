package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fbmobile/internal/core"
	"fbmobile/internal/period"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(id, date string, cat core.Category, model, deviceModel, detail, cost, price string) core.Transaction {
	t := core.Transaction{
		ID:          id,
		Date:        date,
		Category:    cat,
		Model:       model,
		DeviceModel: deviceModel,
		Detail:      detail,
		Price:       dec(price),
	}
	if cost != "" {
		c := dec(cost)
		t.Cost = &c
	}
	t.Profit = t.Price.Sub(t.CostOrZero())
	return t
}

// fixture mirrors a small shop ledger across two months.
func fixture() []core.Transaction {
	return []core.Transaction{
		tx("t1", "2025-07-01", core.SellPhone, "VIVO", "Y20", "", "6000", "8500"),
		tx("t2", "2025-07-01", core.RepairPhone, "iPhone", "11", "เปลี่ยนจอ", "300", "1500"),
		tx("t3", "2025-07-02", core.TopUp, "", "", "", "", "500"),
		tx("t4", "2025-07-06", core.Transfer, "", "", "", "", "20"),
		tx("t5", "2025-08-15", core.SellPhone, "OPPO", "A18", "", "3000", "3900"),
	}
}

func ids(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []core.Transaction, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	txs := fixture()

	assertIDs(t, FilterByMonth(txs, "2025-07"), "t1", "t2", "t3", "t4")
	assertIDs(t, FilterByMonth(txs, "2025-08"), "t5")
	assertIDs(t, FilterByMonth(txs, "2025-09"))
	assertIDs(t, FilterByMonth(txs, ""), "t1", "t2", "t3", "t4", "t5")
}

func TestFilterByMonthSkipsMalformedDates(t *testing.T) {
	txs := []core.Transaction{
		tx("good", "2025-07-01", core.TopUp, "", "", "", "", "100"),
		tx("bad", "bogus", core.TopUp, "", "", "", "", "100"),
	}
	assertIDs(t, FilterByMonth(txs, "2025-07"), "good")
}

func TestFilterByWeek(t *testing.T) {
	txs := fixture()

	assertIDs(t, FilterByWeek(txs, "2025-06-29", "2025-07-05"), "t1", "t2", "t3")
	assertIDs(t, FilterByWeek(txs, "2025-07-06", "2025-07-12"), "t4")
	// Empty bounds mean no week is selected.
	assertIDs(t, FilterByWeek(txs, "", ""), "t1", "t2", "t3", "t4", "t5")
}

func TestFilterByCategoryAndModel(t *testing.T) {
	txs := fixture()

	assertIDs(t, FilterByCategory(txs, core.SellPhone), "t1", "t5")
	assertIDs(t, FilterByCategory(txs, ""), "t1", "t2", "t3", "t4", "t5")
	assertIDs(t, FilterByModel(txs, "VIVO"), "t1")
	assertIDs(t, FilterByModel(txs, ""), "t1", "t2", "t3", "t4", "t5")
}

func TestFiltersCompose(t *testing.T) {
	txs := fixture()

	a := FilterByModel(FilterByCategory(FilterByMonth(txs, "2025-07"), core.SellPhone), "VIVO")
	b := FilterByMonth(FilterByModel(FilterByCategory(txs, core.SellPhone), "VIVO"), "2025-07")

	assertIDs(t, a, "t1")
	assertIDs(t, b, "t1")
}

func TestFilterIdempotent(t *testing.T) {
	txs := fixture()

	once := FilterByMonth(txs, "2025-07")
	twice := FilterByMonth(once, "2025-07")
	assertIDs(t, twice, ids(once)...)
}

func TestSearch(t *testing.T) {
	txs := fixture()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"t1", "t2", "t3", "t4", "t5"}},
		{"brand case-insensitive", "vivo", []string{"t1"}},
		{"category key", "top-up", []string{"t3"}},
		{"thai category label", "เติมเงิน", []string{"t3"}},
		{"repair detail", "เปลี่ยนจอ", []string{"t2"}},
		{"date substring", "2025-07-01", []string{"t1", "t2"}},
		{"no match", "xyzzy", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Search(txs, tt.query), tt.want...)
		})
	}
}

func TestGroupByDate(t *testing.T) {
	txs := fixture()

	groups := GroupByDate(txs)
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}

	// Encounter order, one bucket per distinct date.
	wantDates := []string{"2025-07-01", "2025-07-02", "2025-07-06", "2025-08-15"}
	total := 0
	for i, g := range groups {
		if g.Date != wantDates[i] {
			t.Errorf("groups[%d].Date = %s, want %s", i, g.Date, wantDates[i])
		}
		for _, item := range g.Items {
			if item.Date != g.Date {
				t.Errorf("bucket %s holds record dated %s", g.Date, item.Date)
			}
		}
		total += len(g.Items)
	}
	if total != len(txs) {
		t.Errorf("groups hold %d records, want %d", total, len(txs))
	}
	assertIDs(t, groups[0].Items, "t1", "t2")
}

func TestSortGroupsDesc(t *testing.T) {
	groups := GroupByDate(fixture())
	SortGroupsDesc(groups)

	for i := 1; i < len(groups); i++ {
		if groups[i-1].Date < groups[i].Date {
			t.Fatalf("groups not descending: %s before %s", groups[i-1].Date, groups[i].Date)
		}
	}
	if groups[0].Date != "2025-08-15" {
		t.Errorf("newest group = %s", groups[0].Date)
	}
}

func TestDailyNetIncome(t *testing.T) {
	txs := fixture()

	tests := []struct {
		date string
		want string
	}{
		{"2025-07-01", "3700"}, // 2500 + 1200
		{"2025-07-02", "500"},
		{"2025-07-03", "0"},
	}

	for _, tt := range tests {
		if got := DailyNetIncome(txs, tt.date); !got.Equal(dec(tt.want)) {
			t.Errorf("DailyNetIncome(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := fixture()
	from := period.YearMonth{Year: 2025, Month: time.July}
	to := period.YearMonth{Year: 2025, Month: time.September}

	series := MonthlySeries(txs, from, to)
	if len(series) != 3 {
		t.Fatalf("got %d months, want 3", len(series))
	}

	wants := []struct {
		month string
		total string
	}{
		{"2025-07", "4220"}, // 2500 + 1200 + 500 + 20
		{"2025-08", "900"},
		{"2025-09", "0"}, // empty months still appear
	}
	for i, w := range wants {
		if series[i].Month.String() != w.month {
			t.Errorf("series[%d].Month = %s, want %s", i, series[i].Month, w.month)
		}
		if !series[i].Total.Equal(dec(w.total)) {
			t.Errorf("series[%d].Total = %s, want %s", i, series[i].Total, w.total)
		}
	}

	if got := SeriesTotal(series); !got.Equal(dec("5120")) {
		t.Errorf("SeriesTotal = %s, want 5120", got)
	}
}

func TestMonthlySeriesInvertedRange(t *testing.T) {
	from := period.YearMonth{Year: 2025, Month: time.August}
	to := period.YearMonth{Year: 2025, Month: time.July}
	if got := MonthlySeries(fixture(), from, to); got != nil {
		t.Errorf("inverted range = %v, want nil", got)
	}
}

func TestDistinctModels(t *testing.T) {
	txs := []core.Transaction{
		tx("a", "2025-07-01", core.SellPhone, "VIVO", "Y20", "", "", "100"),
		tx("b", "2025-07-01", core.SellPhone, "VIVO", "", "", "", "100"),   // falls back to brand
		tx("c", "2025-07-01", core.SellPhone, "VIVO", "Y20", "", "", "100"), // duplicate
		tx("d", "2025-07-01", core.SellPhone, "vivo", "", "", "", "100"),   // case-sensitive, distinct
		tx("e", "2025-07-01", core.TopUp, "", "", "", "", "100"),           // blank, excluded
		tx("f", "2025-07-01", core.SellPhone, "", "  A18  ", "", "", "100"),
	}

	got := DistinctModels(txs)
	want := []string{"Y20", "VIVO", "vivo", "A18"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	txs := fixture()
	before := ids(txs)

	FilterByMonth(txs, "2025-07")
	FilterByCategory(txs, core.SellPhone)
	Search(txs, "vivo")
	groups := GroupByDate(txs)
	SortGroupsDesc(groups)

	after := ids(txs)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input mutated: %v -> %v", before, after)
		}
	}
}
