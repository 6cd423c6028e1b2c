package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted in report queries.
const DateLayout = "2006-01-02"

// ReportQuery is the reporting window of a report request. Either both dates or
// both second bounds must be given; dates win when both forms are present.
type ReportQuery struct {
	StartDate   string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	StartSecond *int64 `form:"startSecond" binding:"omitempty,min=0"`
	EndSecond   *int64 `form:"endSecond" binding:"omitempty,min=0"`
}

// ReportQueryStructLevelValidation requires one complete pair of bounds.
func ReportQueryStructLevelValidation(sl validator.StructLevel) {
	q := sl.Current().Interface().(ReportQuery)
	if q.StartDate != "" || q.EndDate != "" {
		if q.StartDate == "" {
			sl.ReportError(q.StartDate, "StartDate", "startDate", "required_with", "EndDate")
		}
		if q.EndDate == "" {
			sl.ReportError(q.EndDate, "EndDate", "endDate", "required_with", "StartDate")
		}
		return
	}
	if q.StartSecond == nil {
		sl.ReportError(q.StartSecond, "StartSecond", "startSecond", "required", "")
	}
	if q.EndSecond == nil {
		sl.ReportError(q.EndSecond, "EndSecond", "endSecond", "required", "")
	}
}

// Window converts the query into a validated period window. Dates are read in loc;
// the end date covers its whole day.
func (q ReportQuery) Window(loc *time.Location) (domain.PeriodWindow, error) {
	if loc == nil {
		loc = time.UTC
	}
	if q.StartDate != "" && q.EndDate != "" {
		start, err := time.ParseInLocation(DateLayout, q.StartDate, loc)
		if err != nil {
			return domain.PeriodWindow{}, fmt.Errorf("%w: invalid startDate %q", apperrors.ErrValidation, q.StartDate)
		}
		end, err := time.ParseInLocation(DateLayout, q.EndDate, loc)
		if err != nil {
			return domain.PeriodWindow{}, fmt.Errorf("%w: invalid endDate %q", apperrors.ErrValidation, q.EndDate)
		}
		return domain.NewPeriodWindow(start.Unix(), end.AddDate(0, 0, 1).Unix()-1)
	}
	if q.StartSecond == nil || q.EndSecond == nil {
		return domain.PeriodWindow{}, fmt.Errorf("%w: startDate/endDate or startSecond/endSecond required", apperrors.ErrValidation)
	}
	return domain.NewPeriodWindow(*q.StartSecond, *q.EndSecond)
}
