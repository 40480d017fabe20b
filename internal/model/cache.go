package model

// LastQuery holds the most recently rendered exportable dataset.
// Period tells which of Events or Months is populated.
type LastQuery struct {
	Period PeriodMode    `json:"period"`
	Label  string        `json:"label,omitempty"` // YYYY-MM or YYYY, as shown in the title
	Events []Event       `json:"events,omitempty"`
	Months []MonthReport `json:"months,omitempty"`
}

// Empty reports whether the cache holds nothing worth exporting
func (q *LastQuery) Empty() bool {
	if q == nil {
		return true
	}
	switch q.Period {
	case PeriodMonth:
		return len(q.Events) == 0
	case PeriodYear:
		for _, m := range q.Months {
			if len(m.Events) > 0 {
				return false
			}
		}
		return true
	default:
		return true
	}
}
