package query

import "go-event-form/internal/model"

// BuildRequest turns a validated form into the analyze payload. Year queries
// always ask for the table format since they render as a consolidated report.
func BuildRequest(mode model.PeriodMode, in Input) model.AnalyzeRequest {
	in = in.Trimmed()
	format := model.ResultFormat(in.Format)
	if !format.Valid() {
		format = model.FormatTable
	}

	req := model.AnalyzeRequest{
		Departamento: in.Department,
		Ciudad:       in.City,
		PeriodoType:  mode,
	}
	if mode == model.PeriodYear {
		req.Format = string(model.FormatTable)
		req.YearSelect = in.Year
		return req
	}
	req.Format = string(format)
	req.Fecha = in.Date
	return req
}

// PeriodLabel is the period shown in result titles: YYYY-MM for month
// queries, the year for annual ones.
func PeriodLabel(mode model.PeriodMode, in Input) string {
	in = in.Trimmed()
	if mode == model.PeriodYear {
		return in.Year
	}
	if len(in.Date) >= 7 {
		return in.Date[:7]
	}
	return in.Date
}
