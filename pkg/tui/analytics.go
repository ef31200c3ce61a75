package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// sparkRunes are the block characters for the revenue chart, lowest to
// highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// AnalyticsScreen renders the 30-day revenue sparkline and KPI deltas.
type AnalyticsScreen struct {
	deps
	points  []models.AnalyticsPoint
	kpis    models.KPIData
	loading bool
	err     error
}

func NewAnalyticsScreen(d deps) *AnalyticsScreen {
	return &AnalyticsScreen{deps: d}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		ctx := context.Background()
		points, err := source.Analytics(ctx, store.ID, 30)
		if err != nil {
			return analyticsLoadedMsg{err: err}
		}
		kpis, err := source.KPIs(ctx, store.ID)
		if err != nil {
			return analyticsLoadedMsg{err: err}
		}
		return analyticsLoadedMsg{points: points, kpis: kpis}
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(analyticsLoadedMsg); ok {
		s.loading = false
		s.err = msg.err
		s.points = msg.points
		s.kpis = msg.kpis
	}
	return nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading analytics…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load analytics: " + s.err.Error())
	}

	store := s.container.ActiveStore()

	var b strings.Builder
	b.WriteString(FieldLabelStyle.Render("REVENUE · LAST 30 DAYS") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Render(sparkline(s.points)) + "\n")

	if len(s.points) > 0 {
		first, last := s.points[0], s.points[len(s.points)-1]
		b.WriteString(DimStyle.Render(fmtDate(first.Date)+" – "+fmtDate(last.Date)) + "\n\n")
	}

	rows := []struct {
		label  string
		value  string
		change decimal.Decimal
	}{
		{"Total revenue", fmtMoney(s.kpis.TotalRevenue, store.Currency), s.kpis.RevenueChange},
		{"Orders", fmt.Sprintf("%d", s.kpis.TotalOrders), s.kpis.OrdersChange},
		{"Customers", fmt.Sprintf("%d", s.kpis.TotalCustomers), s.kpis.CustomersChange},
		{"Avg order value", fmtMoney(s.kpis.AvgOrderValue, store.Currency), s.kpis.AOVChange},
	}
	for _, r := range rows {
		deltaStyle := SavedBadgeStyle
		if r.change.Sign() < 0 {
			deltaStyle = ErrorStyle
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			NormalStyle.Render(pad(r.label, 18)),
			PageTitleStyle.Render(pad(r.value, 12)),
			deltaStyle.Render(fmtChange(r.change)),
		))
	}
	return b.String()
}

// sparkline maps the revenue series onto block characters, scaled
// between the period's min and max.
func sparkline(points []models.AnalyticsPoint) string {
	if len(points) == 0 {
		return ""
	}

	min, max := points[0].Revenue, points[0].Revenue
	for _, p := range points[1:] {
		if p.Revenue.LessThan(min) {
			min = p.Revenue
		}
		if p.Revenue.GreaterThan(max) {
			max = p.Revenue
		}
	}

	span := max.Sub(min)
	var b strings.Builder
	for _, p := range points {
		idx := 0
		if !span.IsZero() {
			scaled := p.Revenue.Sub(min).Div(span).Mul(decimal.NewFromInt(int64(len(sparkRunes) - 1)))
			idx = int(scaled.Round(0).IntPart())
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
