//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/report"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/handler/api"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/tests/common/httptest"
	reportingmock "lounge-scheduler/tests/mock/reporting"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *reportingmock.MockService
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = reportingmock.NewMockService(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockService)

	s.router.GET("/reports", s.handler.Generate)
	s.router.GET("/reports/range", s.handler.GenerateRange)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func sampleMetrics(w timewindow.Window) *report.Metrics {
	machineID := uuid.MustParse("7f1d2c3b-0000-4000-8000-000000000001")
	return &report.Metrics{
		Period:              w,
		TotalBookings:       4,
		CompletedBookings:   3,
		CancelledBookings:   1,
		TotalRevenue:        booking.NewMoney(300),
		AverageBookingValue: 75,
		BookingsByStatus: map[booking.Status]int{
			booking.StatusCompleted: 3,
			booking.StatusCancelled: 1,
		},
		BookingsByMachine: map[uuid.UUID]report.MachineMetrics{
			machineID: {Bookings: 4, Completed: 3, Revenue: booking.NewMoney(300)},
		},
	}
}

func (s *ReportHandlerTestSuite) TestGenerate() {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	w := timewindow.Reconstruct(from, from.AddDate(0, 1, 0))

	s.Run("success: defaults to the previous month", func() {
		s.mockService.EXPECT().Generate(gomock.Any(), "previous-month").Return(sampleMetrics(w), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports", nil)

		var body resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.TotalBookings)
		s.Equal(int64(300), body.TotalRevenueCents)
		s.InDelta(75.0, body.AverageBookingValueCents, 1e-9)
		s.Equal(3, body.BookingsByStatus["completed"])
		s.Equal(3, body.BookingsByMachine["7f1d2c3b-0000-4000-8000-000000000001"].Completed)
	})

	s.Run("error: 400 for an unknown period", func() {
		s.mockService.EXPECT().Generate(gomock.Any(), "last-decade").Return(nil, errs.ErrConfiguration).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports?period=last-decade", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid parameter")
	})
}

func (s *ReportHandlerTestSuite) TestGenerateRange() {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(72 * time.Hour)

	query := func(from, to string) string {
		v := url.Values{}
		if from != "" {
			v.Set("from", from)
		}
		if to != "" {
			v.Set("to", to)
		}
		return "/reports/range?" + v.Encode()
	}

	s.Run("success: passes the bounds through", func() {
		s.mockService.EXPECT().GenerateRange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, w timewindow.Window) (*report.Metrics, error) {
				s.True(from.Equal(w.Start()))
				s.True(to.Equal(w.End()))
				return sampleMetrics(w), nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, query(from.Format(time.RFC3339), to.Format(time.RFC3339)), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	cases := []struct {
		name     string
		from, to string
		message  string
	}{
		{name: "missing from", to: to.Format(time.RFC3339), message: "Invalid query parameters"},
		{name: "malformed to", from: from.Format(time.RFC3339), to: "next week", message: "Invalid query parameters"},
		{name: "inverted range", from: to.Format(time.RFC3339), to: from.Format(time.RFC3339), message: "Invalid time window"},
	}
	for _, tc := range cases {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, query(tc.from, tc.to), nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.message)
		})
	}
}
