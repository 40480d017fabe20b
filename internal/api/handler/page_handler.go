package handler

import (
	"errors"
	"net/http"

	"go-event-form/internal/form"
	"go-event-form/internal/geo"
	"go-event-form/internal/model"
	"go-event-form/internal/render"
)

// Index renders the full form page
// @Summary Event form page
// @Description Render the department, city and period form with the session's current selections
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Internal server error"
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	st, err := h.Sessions.Load(r.Context(), id)
	if err != nil {
		serverError(w, "load session", err)
		return
	}

	// export controls are only offered next to the dataset they export
	output, err := render.CachedResult(st.LastQuery)
	if err != nil {
		serverError(w, "render cached result", err)
		return
	}

	page, err := render.Page(render.PageData{
		Departments: geo.PopulateDepartments(h.Lookup, st.Department),
		Cities:      geo.PopulateCitiesSelected(h.Lookup, st.Department, st.City),
		Period:      st.PeriodView(),
		Output:      output,
		Export:      render.ExportControls{Visible: output != ""},
	})
	if err != nil {
		serverError(w, "render page", err)
		return
	}
	writeHTML(w, http.StatusOK, page)
}

// Cities renders the city select for a department
// @Summary City options
// @Description Store the selected department, drop any previous city and return the city select fragment
// @Tags fragments
// @Produce html
// @Param departamento query string false "Department name"
// @Success 200 {string} string "City select fragment"
// @Failure 500 {string} string "Internal server error"
// @Router /fragments/cities [get]
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	department := r.URL.Query().Get("departamento")

	if _, err := h.Sessions.Update(r.Context(), id, func(st *form.State) error {
		st.SetDepartment(department)
		return nil
	}); err != nil {
		serverError(w, "save department", err)
		return
	}

	frag, err := render.CitySelect(geo.PopulateCities(h.Lookup, department))
	if err != nil {
		serverError(w, "render cities", err)
		return
	}
	writeHTML(w, http.StatusOK, frag)
}

// Period switches between month and year mode
// @Summary Select period mode
// @Description Switch the form to month or year mode and return the period fields fragment
// @Tags fragments
// @Accept x-www-form-urlencoded
// @Produce html
// @Param mode formData string true "Period mode" Enums(month, year)
// @Success 200 {string} string "Period fields fragment"
// @Failure 400 {string} string "Unknown period mode"
// @Failure 500 {string} string "Internal server error"
// @Router /period [post]
func (h *Handler) Period(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form payload", http.StatusBadRequest)
		return
	}
	mode := model.PeriodMode(r.PostFormValue("mode"))

	st, err := h.Sessions.Update(r.Context(), id, func(st *form.State) error {
		// keep what the user already typed in the fields that survive the switch
		captureFields(st, r)
		return st.SelectPeriod(mode)
	})
	if errors.Is(err, form.ErrUnknownMode) {
		http.Error(w, "Unknown period mode", http.StatusBadRequest)
		return
	}
	if err != nil {
		serverError(w, "save period", err)
		return
	}

	frag, err := render.PeriodFields(st.PeriodView())
	if err != nil {
		serverError(w, "render period fields", err)
		return
	}
	writeHTML(w, http.StatusOK, frag)
}

// captureFields copies posted period inputs into the state. Absent inputs
// leave the state untouched.
func captureFields(st *form.State, r *http.Request) {
	if v, ok := r.PostForm["fecha"]; ok && len(v) > 0 {
		st.Date = v[0]
	}
	if v, ok := r.PostForm["year_select"]; ok && len(v) > 0 {
		st.Year = v[0]
	}
	if f := model.ResultFormat(r.PostFormValue("format")); f.Valid() {
		st.Format = f
	}
}
