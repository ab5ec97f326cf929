package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"fbmobile/internal/log"
	"fbmobile/internal/period"
	"fbmobile/internal/report"
)

// barHeightMax is the tallest bar in pixels; barHeightMin keeps
// zero-profit months visible on the chart.
const (
	barHeightMax = 120
	barHeightMin = 10
)

// handleDashboardPage renders the dashboard partial: the cumulative
// profit since the report start month and a per-month bar chart.
func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	to := period.YearMonthOf(time.Now())
	key := "series|" + s.startMonth.String() + "|" + to.String()

	series, ok := s.seriesCache.Get(key)
	if !ok {
		series = report.MonthlySeries(s.store.List(), s.startMonth, to)
		s.seriesCache.Set(key, series)
	}
	total := report.SeriesTotal(series)

	type bar struct {
		Label  string
		Amount string
		Height int
	}
	data := struct {
		Total string
		Bars  []bar
	}{
		Total: formatBaht(total),
	}
	for _, m := range series {
		data.Bars = append(data.Bars, bar{
			Label:  m.Month.ShortLabel(),
			Amount: formatBaht(m.Total),
			Height: barHeight(m.Total, total),
		})
	}

	slog.DebugContext(r.Context(), "Dashboard rendered",
		log.FieldMonth, to.String(), log.FieldCount, len(series))
	s.render(w, r, "dashboard.html", data)
}

// barHeight scales a month's profit to its share of the series total,
// with a floor so near-zero months remain visible.
func barHeight(monthTotal, seriesTotal decimal.Decimal) int {
	if seriesTotal.IsZero() || monthTotal.IsNegative() {
		return barHeightMin
	}
	h := int(monthTotal.Div(seriesTotal).Mul(decimal.NewFromInt(barHeightMax)).IntPart())
	if h < barHeightMin {
		return barHeightMin
	}
	if h > barHeightMax {
		return barHeightMax
	}
	return h
}
