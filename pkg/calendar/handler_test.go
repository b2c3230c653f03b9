package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Minpi-0/traveler-app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetMonthGrid(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC))
	h := NewHandler(clock)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		want       MonthGridDTO
	}{
		{
			name:       "explicit date",
			query:      "?date=2024-02-10",
			wantStatus: http.StatusOK,
			want: MonthGridDTO{
				Year:          2024,
				Month:         2,
				LeadingBlanks: 4,
				Days:          29,
				WeekStart:     "2024-02-04",
			},
		},
		{
			name:       "missing date falls back to today",
			query:      "",
			wantStatus: http.StatusOK,
			want: MonthGridDTO{
				Year:          2025,
				Month:         11,
				LeadingBlanks: 6,
				Days:          30,
				WeekStart:     "2025-11-09",
			},
		},
		{
			name:       "malformed date is rejected",
			query:      "?date=15.11.2025",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/calendar/month"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.GetMonthGrid(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got MonthGridDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
