package query

import (
	"strings"

	"go-event-form/internal/geo"
	"go-event-form/internal/model"
)

// Field names a form input that failed validation
type Field string

const (
	FieldDepartment Field = "department"
	FieldCity       Field = "city"
	FieldDate       Field = "date"
	FieldYear       Field = "year"
)

// Input is the submitted form, as read from the request
type Input struct {
	Department string
	City       string
	Date       string
	Year       string
	Format     string
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (in Input) Trimmed() Input {
	return Input{
		Department: strings.TrimSpace(in.Department),
		City:       strings.TrimSpace(in.City),
		Date:       strings.TrimSpace(in.Date),
		Year:       strings.TrimSpace(in.Year),
		Format:     strings.TrimSpace(in.Format),
	}
}

// ValidationError lists the missing fields in reporting order
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	return "missing " + joinFields(e.Missing)
}

// Message is the user-facing warning text
func (e *ValidationError) Message() string {
	return "Please select the " + joinFields(e.Missing) + "."
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// Validate checks the form for mode. Fields are checked in a fixed order:
// department, city, then the date (month) or year (year). A city that does not
// belong to the department counts as missing.
func Validate(l geo.Lookup, mode model.PeriodMode, in Input) error {
	in = in.Trimmed()
	var missing []Field

	if in.Department == "" || !l.Has(in.Department) {
		missing = append(missing, FieldDepartment)
	}
	if in.City == "" || !l.HasCity(in.Department, in.City) {
		missing = append(missing, FieldCity)
	}
	switch mode {
	case model.PeriodYear:
		if in.Year == "" {
			missing = append(missing, FieldYear)
		}
	default:
		if in.Date == "" {
			missing = append(missing, FieldDate)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
