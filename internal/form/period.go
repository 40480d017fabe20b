package form

import "go-event-form/internal/model"

// PeriodView is what the period part of the form looks like for a mode
type PeriodView struct {
	Mode                 model.PeriodMode
	DateRequired         bool
	YearRequired         bool
	FormatVisible        bool
	AnnualWarningVisible bool
	Label                string
	Date                 string
	Year                 string
	Format               model.ResultFormat
}

const (
	monthLabel = "Month Selected"
	yearLabel  = "Full Year"
)

// PeriodView derives field visibility from the current mode
func (s *State) PeriodView() PeriodView {
	v := PeriodView{
		Mode:   s.Mode,
		Date:   s.Date,
		Year:   s.Year,
		Format: s.Format,
	}
	if s.Mode == model.PeriodYear {
		v.YearRequired = true
		v.AnnualWarningVisible = true
		v.Label = yearLabel
		return v
	}
	v.DateRequired = true
	v.FormatVisible = true
	v.Label = monthLabel
	return v
}
