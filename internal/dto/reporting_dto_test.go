package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seconds(v int64) *int64 {
	return &v
}

func TestReportQuery_Window(t *testing.T) {
	taipei := time.FixedZone("CST", 8*60*60)

	tests := []struct {
		name    string
		query   dto.ReportQuery
		loc     *time.Location
		want    domain.PeriodWindow
		wantErr bool
	}{
		{
			name:  "dates in UTC cover the whole end day",
			query: dto.ReportQuery{StartDate: "2024-01-01", EndDate: "2024-01-31"},
			loc:   time.UTC,
			want:  domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1706745599},
		},
		{
			name:  "dates read in the report location",
			query: dto.ReportQuery{StartDate: "2024-01-01", EndDate: "2024-02-29"},
			loc:   taipei,
			want:  domain.PeriodWindow{StartSecond: 1704038400, EndSecond: 1709222399},
		},
		{
			name:  "nil location falls back to UTC",
			query: dto.ReportQuery{StartDate: "2024-01-01", EndDate: "2024-01-01"},
			want:  domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1704153599},
		},
		{
			name:  "seconds",
			query: dto.ReportQuery{StartSecond: seconds(10), EndSecond: seconds(20)},
			want:  domain.PeriodWindow{StartSecond: 10, EndSecond: 20},
		},
		{
			name:  "dates win over seconds",
			query: dto.ReportQuery{StartDate: "2024-01-01", EndDate: "2024-01-01", StartSecond: seconds(1), EndSecond: seconds(2)},
			loc:   time.UTC,
			want:  domain.PeriodWindow{StartSecond: 1704067200, EndSecond: 1704153599},
		},
		{
			name:    "reversed dates",
			query:   dto.ReportQuery{StartDate: "2024-02-01", EndDate: "2024-01-01"},
			wantErr: true,
		},
		{
			name:    "malformed date",
			query:   dto.ReportQuery{StartDate: "01/01/2024", EndDate: "2024-01-31"},
			wantErr: true,
		},
		{
			name:    "missing bounds",
			query:   dto.ReportQuery{StartSecond: seconds(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Window(tt.loc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportQueryStructLevelValidation(t *testing.T) {
	validate := validator.New()
	validate.SetTagName("binding")
	validate.RegisterStructValidation(dto.ReportQueryStructLevelValidation, dto.ReportQuery{})

	tests := []struct {
		name    string
		query   dto.ReportQuery
		wantErr bool
	}{
		{name: "date pair", query: dto.ReportQuery{StartDate: "2024-01-01", EndDate: "2024-01-31"}},
		{name: "second pair", query: dto.ReportQuery{StartSecond: seconds(0), EndSecond: seconds(0)}},
		{name: "empty", query: dto.ReportQuery{}, wantErr: true},
		{name: "end date only", query: dto.ReportQuery{EndDate: "2024-01-31"}, wantErr: true},
		{name: "start second only", query: dto.ReportQuery{StartSecond: seconds(5)}, wantErr: true},
		{name: "negative second", query: dto.ReportQuery{StartSecond: seconds(-1), EndSecond: seconds(5)}, wantErr: true},
		{name: "bad date format", query: dto.ReportQuery{StartDate: "2024-1-1", EndDate: "2024-01-31"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
