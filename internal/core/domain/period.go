package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/book_reports/internal/apperrors"
)

// PeriodWindow is an inclusive reporting window expressed in unix seconds.
type PeriodWindow struct {
	StartSecond int64 `json:"startSecond"`
	EndSecond   int64 `json:"endSecond"`
}

// NewPeriodWindow validates and builds a window.
func NewPeriodWindow(startSecond, endSecond int64) (PeriodWindow, error) {
	w := PeriodWindow{StartSecond: startSecond, EndSecond: endSecond}
	if err := w.Validate(); err != nil {
		return PeriodWindow{}, err
	}
	return w, nil
}

// Validate checks that the window is non-negative and ordered.
func (w PeriodWindow) Validate() error {
	if w.StartSecond < 0 || w.EndSecond < 0 {
		return fmt.Errorf("%w: period bounds must not be negative", apperrors.ErrValidation)
	}
	if w.StartSecond > w.EndSecond {
		return fmt.Errorf("%w: period start %d is after end %d", apperrors.ErrValidation, w.StartSecond, w.EndSecond)
	}
	return nil
}

// PriorYearEnd is the last second before the period starts. Profit and loss up to this
// point is accumulated; everything after it belongs to the current period.
func (w PeriodWindow) PriorYearEnd() int64 {
	if w.StartSecond == 0 {
		return 0
	}
	return w.StartSecond - 1
}

// HasHistory reports whether any time precedes the window.
func (w PeriodWindow) HasHistory() bool {
	return w.StartSecond > 0
}

// FromTimeZeroToPriorYearEnd is the window covering all history before the period.
func (w PeriodWindow) FromTimeZeroToPriorYearEnd() PeriodWindow {
	return PeriodWindow{StartSecond: 0, EndSecond: w.PriorYearEnd()}
}

// FromTimeZeroToEnd is the cumulative window used by balance sheets.
func (w PeriodWindow) FromTimeZeroToEnd() PeriodWindow {
	return PeriodWindow{StartSecond: 0, EndSecond: w.EndSecond}
}

// PreviousYear shifts the window back by one calendar year for comparative columns.
func (w PeriodWindow) PreviousYear() PeriodWindow {
	shift := func(sec int64) int64 {
		shifted := time.Unix(sec, 0).UTC().AddDate(-1, 0, 0).Unix()
		if shifted < 0 {
			return 0
		}
		return shifted
	}
	return PeriodWindow{StartSecond: shift(w.StartSecond), EndSecond: shift(w.EndSecond)}
}

// Start returns the window start as UTC time.
func (w PeriodWindow) Start() time.Time {
	return time.Unix(w.StartSecond, 0).UTC()
}

// End returns the window end as UTC time.
func (w PeriodWindow) End() time.Time {
	return time.Unix(w.EndSecond, 0).UTC()
}
