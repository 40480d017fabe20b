package query

import (
	"context"
	"fmt"
	"html/template"
	"log"

	"go-event-form/internal/model"
	"go-event-form/internal/render"
)

// Analyzer calls the analysis backend
type Analyzer interface {
	Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error)
}

// View is the rendered result of one submit
type View struct {
	HTML    template.HTML
	Cache   *model.LastQuery // nil unless the result can be exported
	Outcome string
}

const connectionErrorOutcome = "connection_error"

// Submitter sends a validated form to the backend and renders the answer
type Submitter struct {
	Analyzer Analyzer
}

// Submit issues exactly one analyze call. Transport and decoding failures are
// rendered as a connection banner; the returned error is only set when a
// template fails to render.
func (s *Submitter) Submit(ctx context.Context, mode model.PeriodMode, in Input) (View, error) {
	in = in.Trimmed()
	req := BuildRequest(mode, in)
	label := PeriodLabel(mode, in)

	resp, err := s.Analyzer.Analyze(ctx, req)
	if err != nil {
		log.Printf("❌ Analyze request for %s/%s failed: %v", in.Department, in.City, err)
		html, rerr := ConnectionAlert()
		return View{HTML: html, Outcome: connectionErrorOutcome}, rerr
	}

	return Render(Classify(resp, mode), in.City, label)
}

// Render dispatches an outcome to its renderer and decides what gets cached
func Render(o Outcome, city, label string) (View, error) {
	v := View{Outcome: Name(o)}
	var err error

	switch r := o.(type) {
	case Failure:
		v.HTML, err = render.Alert(render.LevelDanger, "Error:", r.Message)
	case MonthTable:
		v.HTML, err = render.BuildEventsTable(r.Events, label)
		v.Cache = &model.LastQuery{Period: model.PeriodMonth, Label: label, Events: r.Events}
	case MonthDetail:
		v.HTML, err = render.BuildDetailView(r.Text, label)
	case NoEvents:
		v.HTML, err = render.Alert(render.LevelInfo, "",
			fmt.Sprintf("No significant commercial events were identified for %s in the selected month.", city))
	case YearlyReport:
		v.HTML, err = render.BuildYearlyReport(r.Months, label)
		v.Cache = &model.LastQuery{Period: model.PeriodYear, Label: label, Months: r.Months}
	case Unavailable:
		v.HTML, err = render.Alert(render.LevelInfo, "",
			fmt.Sprintf("The report could not be generated for %s in the selected period.", city))
	default:
		return View{}, fmt.Errorf("unhandled outcome %T", o)
	}
	if err != nil {
		return View{}, err
	}
	return v, nil
}

// ValidationAlert renders the inline warning for a failed validation
func ValidationAlert(verr *ValidationError) (template.HTML, error) {
	return render.Alert(render.LevelWarning, "Attention:", verr.Message())
}

// ConnectionAlert renders the generic transport failure banner
func ConnectionAlert() (template.HTML, error) {
	return render.Alert(render.LevelDanger, "", "There was a problem connecting to the server.")
}
