package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"go-event-form/internal/form"
	"go-event-form/internal/metrics"
	"go-event-form/internal/model"
	"go-event-form/internal/query"
	"go-event-form/internal/render"
)

var errStaleQuery = errors.New("a newer query has started")

const validationOutcome = "validation_error"

// Query validates the form, calls the analysis backend and renders the result
// @Summary Analyze events
// @Description Validate the form, run one analyze call and return the rendered result with out-of-band export controls
// @Tags query
// @Accept x-www-form-urlencoded
// @Produce html
// @Param departamento formData string true "Department"
// @Param ciudad formData string true "City"
// @Param fecha formData string false "Date (YYYY-MM-DD), month mode"
// @Param year_select formData string false "Year (YYYY), year mode"
// @Param format formData string false "Result format" Enums(table, detail)
// @Param periodo_type formData string false "Period mode shown by the page" Enums(month, year)
// @Success 200 {string} string "Result fragment"
// @Failure 400 {string} string "Invalid form payload"
// @Failure 500 {string} string "Internal server error"
// @Router /query [post]
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form payload", http.StatusBadRequest)
		return
	}
	in := query.Input{
		Department: r.PostFormValue("departamento"),
		City:       r.PostFormValue("ciudad"),
		Date:       r.PostFormValue("fecha"),
		Year:       r.PostFormValue("year_select"),
		Format:     r.PostFormValue("format"),
	}.Trimmed()

	var (
		mode model.PeriodMode
		seq  int64
		verr *query.ValidationError
	)
	posted := model.PeriodMode(r.PostFormValue("periodo_type"))
	_, err := h.Sessions.Update(r.Context(), id, func(st *form.State) error {
		// the page's hidden mirror wins; another tab may have moved the session
		if posted.Valid() && posted != st.Mode {
			if err := st.SelectPeriod(posted); err != nil {
				return err
			}
		}
		mode = st.Mode
		st.Department = in.Department
		st.City = in.City
		if mode == model.PeriodYear {
			st.Year = in.Year
		} else {
			st.Date = in.Date
		}
		if f := model.ResultFormat(in.Format); f.Valid() {
			st.Format = f
		}

		if err := query.Validate(h.Lookup, mode, in); err != nil {
			if !errors.As(err, &verr) {
				return err
			}
			st.ClearCache()
			return nil
		}
		seq = st.BeginQuery()
		return nil
	})
	if err != nil {
		serverError(w, "begin query", err)
		return
	}

	if verr != nil {
		metrics.ObserveOutcome(validationOutcome)
		html, err := query.ValidationAlert(verr)
		if err != nil {
			serverError(w, "render validation alert", err)
			return
		}
		h.writeResult(w, html, false)
		return
	}

	view, err := h.Submitter.Submit(r.Context(), mode, in)
	if err != nil {
		serverError(w, "render query result", err)
		return
	}
	metrics.ObserveOutcome(view.Outcome)

	exportable := view.Cache != nil
	if exportable {
		_, err := h.Sessions.Update(r.Context(), id, func(st *form.State) error {
			if st.QuerySeq != seq {
				return errStaleQuery
			}
			st.LastQuery = view.Cache
			return nil
		})
		switch {
		case errors.Is(err, errStaleQuery):
			log.Printf("⚠️ Dropping stale result for session %s (query %d)", id, seq)
			exportable = false
		case err != nil:
			serverError(w, "save query result", err)
			return
		}
	}

	h.writeResult(w, view.HTML, exportable)
}

// writeResult sends the output fragment with the export controls and the
// hidden annual warning swapped out-of-band.
func (h *Handler) writeResult(w http.ResponseWriter, output template.HTML, exportable bool) {
	controls, err := render.ExportControlsFragment(render.ExportControls{Visible: exportable, OutOfBand: true})
	if err != nil {
		serverError(w, "render export controls", err)
		return
	}
	warning, err := render.HiddenAnnualWarning()
	if err != nil {
		serverError(w, "render annual warning", err)
		return
	}
	writeHTML(w, http.StatusOK, output, controls, warning)
}
