package form

import (
	"errors"
	"fmt"

	"go-event-form/internal/model"
)

// ErrUnknownMode is returned when a tab carries a mode that is neither
// month nor year.
var ErrUnknownMode = errors.New("unknown period mode")

// State is the per-session page state. Mode has a single writer,
// SelectPeriod; everything else reads it.
type State struct {
	Department string             `json:"department"`
	City       string             `json:"city"`
	Mode       model.PeriodMode   `json:"mode"`
	Date       string             `json:"date,omitempty"`
	Year       string             `json:"year,omitempty"`
	Format     model.ResultFormat `json:"format"`
	LastQuery  *model.LastQuery   `json:"last_query,omitempty"`
	QuerySeq   int64              `json:"query_seq"`
}

// New returns the initial page state: month mode, table format, empty form
func New() *State {
	return &State{
		Mode:   model.PeriodMonth,
		Format: model.FormatTable,
	}
}

// Normalize repairs a state decoded from storage so readers can rely on a
// valid mode and format.
func (s *State) Normalize() {
	if !s.Mode.Valid() {
		s.Mode = model.PeriodMonth
	}
	if !s.Format.Valid() {
		s.Format = model.FormatTable
	}
}

// SetDepartment changes the department. Any previous city selection is
// dropped, even when the department did not change.
func (s *State) SetDepartment(department string) {
	s.Department = department
	s.City = ""
}

// SelectPeriod switches the period mode and applies the field side effects of
// the target mode.
func (s *State) SelectPeriod(mode model.PeriodMode) error {
	switch mode {
	case model.PeriodMonth:
		s.Year = ""
	case model.PeriodYear:
		s.Date = ""
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	s.Mode = mode
	return nil
}

// ClearCache forgets the last exportable dataset
func (s *State) ClearCache() {
	s.LastQuery = nil
}

// BeginQuery starts a new submit: bumps the sequence, clears the cache and
// returns the sequence number the eventual response must match.
func (s *State) BeginQuery() int64 {
	s.QuerySeq++
	s.LastQuery = nil
	return s.QuerySeq
}

// Exportable reports whether there is cached data to export
func (s *State) Exportable() bool {
	return !s.LastQuery.Empty()
}
