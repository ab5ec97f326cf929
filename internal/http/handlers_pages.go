package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fbmobile/internal/core"
	"fbmobile/internal/log"
	"fbmobile/internal/period"
	"fbmobile/internal/report"
)

// View models for the list templates.
type (
	cardView struct {
		ID            string
		CategoryLabel string
		Model         string
		DeviceModel   string
		Detail        string
		HasCost       bool
		Cost          string
		Price         string
		DateText      string
	}

	dayGroupView struct {
		Heading string
		Cards   []cardView
	}

	listView struct {
		Groups []dayGroupView
	}

	option struct {
		Value    string
		Label    string
		Selected bool
	}
)

var thaiMonthsShort = [...]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// handleDayPage renders the day partial: today's net income plus the
// full transaction list, searchable by free text.
func (s *Server) handleDayPage(w http.ResponseWriter, r *http.Request) {
	query := sanitizeInput(r.URL.Query().Get("q"))
	txs := s.store.List()
	today := core.Today()

	groups := s.cachedGroups("day|q="+strings.ToLower(query), func() []report.DayGroup {
		g := report.GroupByDate(report.Search(txs, query))
		report.SortGroupsDesc(g)
		return g
	})

	data := struct {
		Income string
		Query  string
		List   listView
	}{
		Income: formatBaht(report.DailyNetIncome(txs, today)),
		Query:  query,
		List:   buildListView(groups),
	}

	slog.DebugContext(r.Context(), "Day page rendered",
		log.FieldDate, today, log.FieldQuery, query, log.FieldCount, len(txs))
	s.render(w, r, "day.html", data)
}

// handlePeriodPage renders the period partial: four independent
// selectors (month, week, category, model) driving the filtered list
// and its count.
func (s *Server) handlePeriodPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := sanitizeInput(q.Get("q"))

	months := period.MonthsInRange(s.startMonth, period.YearMonthOf(time.Now()))
	selectedMonth := sanitizeInput(q.Get("month"))
	if selectedMonth == "" && len(months) > 0 {
		selectedMonth = months[0].String()
	}

	var weeks []period.WeekRange
	if ym, err := period.ParseYearMonth(selectedMonth); err == nil {
		weeks = period.WeeksInMonth(ym, s.weekStart)
	}

	selectedWeek := sanitizeInput(q.Get("week"))
	weekStart, weekEnd, weekOK := period.ParseWeekValue(selectedWeek)
	if !weekOK {
		selectedWeek = ""
	}

	selectedCategory := core.Category(sanitizeInput(q.Get("category")))
	if selectedCategory != "" && !selectedCategory.Valid() {
		selectedCategory = ""
	}
	selectedModel := sanitizeInput(q.Get("model"))

	txs := s.store.List()
	filtered := report.FilterByWeek(
		report.FilterByModel(
			report.FilterByCategory(
				report.FilterByMonth(txs, selectedMonth),
				selectedCategory),
			selectedModel),
		weekStart, weekEnd)
	count := len(filtered)

	cacheKey := strings.Join([]string{"period", selectedMonth, selectedWeek,
		string(selectedCategory), selectedModel, strings.ToLower(query)}, "|")
	groups := s.cachedGroups(cacheKey, func() []report.DayGroup {
		g := report.GroupByDate(report.Search(filtered, query))
		report.SortGroupsDesc(g)
		return g
	})

	data := struct {
		Months     []option
		Weeks      []option
		Categories []option
		Models     []option
		Query      string
		Count      int
		List       listView
	}{
		Query: query,
		Count: count,
		List:  buildListView(groups),
	}
	for _, m := range months {
		data.Months = append(data.Months, option{
			Value: m.String(), Label: m.Label(), Selected: m.String() == selectedMonth,
		})
	}
	for _, wk := range weeks {
		data.Weeks = append(data.Weeks, option{
			Value: wk.Value(), Label: wk.Label(), Selected: wk.Value() == selectedWeek,
		})
	}
	for _, c := range core.Categories() {
		data.Categories = append(data.Categories, option{
			Value: string(c), Label: c.Label(), Selected: c == selectedCategory,
		})
	}
	for _, m := range core.AllModels() {
		data.Models = append(data.Models, option{
			Value: m, Label: m, Selected: m == selectedModel,
		})
	}

	slog.DebugContext(r.Context(), "Period page rendered",
		log.FieldMonth, selectedMonth, log.FieldWeek, selectedWeek,
		log.FieldCategory, selectedCategory, log.FieldModel, selectedModel,
		log.FieldCount, count)
	s.render(w, r, "period.html", data)
}

// cachedGroups returns the cached day groups for the key, computing and
// caching them on a miss.
func (s *Server) cachedGroups(key string, compute func() []report.DayGroup) []report.DayGroup {
	if groups, ok := s.listCache.Get(key); ok {
		return groups
	}
	groups := compute()
	s.listCache.Set(key, groups)
	return groups
}

func buildListView(groups []report.DayGroup) listView {
	var view listView
	for _, g := range groups {
		gv := dayGroupView{Heading: dayHeading(g.Date)}
		for _, t := range g.Items {
			card := cardView{
				ID:            t.ID,
				CategoryLabel: t.Category.Label(),
				Model:         t.Model,
				DeviceModel:   t.DeviceModel,
				Detail:        t.Detail,
				HasCost:       t.HasCost(),
				Price:         formatBaht(t.Price),
				DateText:      cardDate(t.Date),
			}
			if t.HasCost() {
				card.Cost = formatBaht(t.CostOrZero())
			}
			gv.Cards = append(gv.Cards, card)
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}

// dayHeading formats a group heading like "1/7/2025". Unparsable dates
// fall back to the raw string.
func dayHeading(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// cardDate formats a card footer date like "1 ก.ค. 2025".
func cardDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonthsShort[int(t.Month())-1], t.Year())
}
