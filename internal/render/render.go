package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"go-event-form/internal/form"
	"go-event-form/internal/geo"
	"go-event-form/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Alert levels map onto bootstrap alert classes
const (
	LevelWarning = "warning"
	LevelDanger  = "danger"
	LevelInfo    = "info"
)

const (
	placeholderNA          = "N/A"
	placeholderName        = "No name"
	placeholderDescription = "No impact description."
)

type eventRow struct {
	Date        string
	Name        string
	Impact      string
	Description string
	Class       string
}

type monthCard struct {
	Name string
	Rows []eventRow
}

type alertData struct {
	Level   string
	Title   string
	Message string
}

// ExportControls is the state of the export button group
type ExportControls struct {
	Visible   bool
	OutOfBand bool
}

// PageData feeds the full page template
type PageData struct {
	Departments geo.Select
	Cities      geo.Select
	Period      form.PeriodView
	Output      template.HTML // initial content of #event-output
	Export      ExportControls
}

func execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// ImpactClass picks the badge styling for a free-text impact classification
func ImpactClass(impact string) string {
	text := strings.ToLower(impact)
	switch {
	case strings.Contains(text, "positivo"):
		return "bg-success"
	case strings.Contains(text, "negativo"):
		return "bg-danger"
	case strings.Contains(text, "neutro"):
		return "bg-warning text-dark"
	default:
		return "bg-secondary"
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func rows(events []model.Event) []eventRow {
	out := make([]eventRow, 0, len(events))
	for _, e := range events {
		out = append(out, eventRow{
			Date:        orDefault(e.Date, placeholderNA),
			Name:        orDefault(e.Name, placeholderName),
			Impact:      orDefault(e.Impact, placeholderNA),
			Description: orDefault(e.Description, placeholderDescription),
			Class:       ImpactClass(e.Impact),
		})
	}
	return out
}

// BuildDetailView wraps every non-blank line of text in a paragraph
func BuildDetailView(text, periodLabel string) (template.HTML, error) {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return execute("detail", struct {
		Label      string
		Paragraphs []string
	}{periodLabel, paragraphs})
}

// BuildEventsTableBody renders events as the <tbody> of an events table
func BuildEventsTableBody(events []model.Event) (template.HTML, error) {
	return execute("events_body", rows(events))
}

// BuildEventsTable renders a titled table of events
func BuildEventsTable(events []model.Event, periodLabel string) (template.HTML, error) {
	return execute("events_table", struct {
		Label string
		Rows  []eventRow
	}{periodLabel, rows(events)})
}

// BuildYearlyReport renders one card per month report
func BuildYearlyReport(months []model.MonthReport, yearLabel string) (template.HTML, error) {
	cards := make([]monthCard, 0, len(months))
	for _, m := range months {
		cards = append(cards, monthCard{Name: m.MonthName, Rows: rows(m.Events)})
	}
	return execute("yearly_report", struct {
		Label  string
		Months []monthCard
	}{yearLabel, cards})
}

// CachedResult re-renders the exportable dataset of a previous query, or
// nothing when q is empty.
func CachedResult(q *model.LastQuery) (template.HTML, error) {
	if q.Empty() {
		return "", nil
	}
	if q.Period == model.PeriodYear {
		return BuildYearlyReport(q.Months, q.Label)
	}
	return BuildEventsTable(q.Events, q.Label)
}

// Alert renders a banner. title may be empty.
func Alert(level, title, message string) (template.HTML, error) {
	return execute("alert", alertData{Level: level, Title: title, Message: message})
}

// AlertPage renders a banner as a standalone page, used by plain form posts
func AlertPage(level, title, message string) (template.HTML, error) {
	return execute("alert_page", alertData{Level: level, Title: title, Message: message})
}

// Page renders the full form page
func Page(data PageData) (template.HTML, error) {
	return execute("page", data)
}

// CitySelect renders the city <select>
func CitySelect(sel geo.Select) (template.HTML, error) {
	return execute("city_select", sel)
}

// PeriodFields renders the tabs and period inputs for a mode
func PeriodFields(v form.PeriodView) (template.HTML, error) {
	return execute("period_fields", v)
}

// ExportControlsFragment renders the export buttons, optionally as an
// out-of-band swap.
func ExportControlsFragment(c ExportControls) (template.HTML, error) {
	return execute("export_controls", c)
}

// HiddenAnnualWarning renders an out-of-band swap hiding the annual warning
func HiddenAnnualWarning() (template.HTML, error) {
	return execute("annual_warning_oob", nil)
}
