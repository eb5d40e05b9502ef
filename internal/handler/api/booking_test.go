//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/handler/api"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/usecase/scheduling"
	"lounge-scheduler/tests/common/builder"
	"lounge-scheduler/tests/common/httptest"
	"lounge-scheduler/tests/common/testutil"
	schedulingmock "lounge-scheduler/tests/mock/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockAllocator *schedulingmock.MockAllocator
	handler       *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAllocator = schedulingmock.NewMockAllocator(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockAllocator)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/begin", s.handler.Begin)
	s.router.POST("/bookings/:id/complete", s.handler.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returned := b.BuildReconstructed()

	bound := []testCaseBooking{
		{name: "customer length OK (200 chars)", mutate: testutil.Field("customer", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "customer length invalid (201 chars)", mutate: testutil.Field("customer", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "end equal to start", mutate: testutil.Field("endTime", b.Start.Format(time.RFC3339)), expectCode: http.StatusBadRequest, expectInBody: "Invalid time window"},
		{name: "end before start", mutate: testutil.Field("endTime", b.Start.Add(-time.Minute).Format(time.RFC3339)), expectCode: http.StatusBadRequest, expectInBody: "Invalid time window"},
	}

	missing := []testCaseBooking{
		{name: "missing field: machineId (required)", mutate: testutil.Field("machineId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer (required)", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: startTime (required)", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endTime (required)", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "machineId is not a uuid", mutate: testutil.Field("machineId", "station-1"), expectCode: http.StatusBadRequest},
		{name: "startTime is not RFC 3339", mutate: testutil.Field("startTime", "tomorrow"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, malformed}

	s.Run("success: returns 201 Created with the admitted booking", func() {
		s.mockAllocator.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req scheduling.BookingRequest) (*booking.Booking, error) {
				s.Equal(b.MachineID, req.MachineID)
				s.Equal(b.Start, req.Window.Start().UTC())
				s.Equal(b.End, req.Window.End().UTC())
				return returned, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returned.ID(), body.ID)
		s.Equal("booked", body.Status)
		s.Equal(int64(1000), body.PriceCents)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + returned.ID().String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockAllocator.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
							Return(returned, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
					}
				})
			}
		}
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "overlap", err: errs.Mark(errs.New("taken"), errs.ErrOverlap), expectCode: http.StatusConflict},
			{name: "machine in maintenance", err: errs.ErrMachineUnavailable, expectCode: http.StatusConflict},
			{name: "window in the past", err: errs.ErrInvalidWindow, expectCode: http.StatusBadRequest},
			{name: "unknown machine", err: errs.ErrNotFound, expectCode: http.StatusNotFound},
			{name: "lapsed subscription", err: errs.ErrSubscriptionInactive, expectCode: http.StatusUnprocessableEntity},
			{name: "offer not active", err: errs.ErrOfferNotActive, expectCode: http.StatusUnprocessableEntity},
			{name: "database failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAllocator.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				resp := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				if tc.expectCode < http.StatusInternalServerError {
					s.Equal(tc.err.Error(), resp.Detail)
				} else {
					s.Nil(resp.Detail)
				}
			})
		}
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *BookingHandlerTestSuite) TestLifecycle() {
	id := uuid.New()
	done := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = id
		b.Status = booking.StatusCompleted
	}).BuildReconstructed()

	s.Run("success: complete returns the updated booking", func() {
		s.mockAllocator.EXPECT().CompleteBooking(gomock.Any(), id).Return(done, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
	})

	s.Run("error: 409 when cancelling a finished booking", func() {
		s.mockAllocator.EXPECT().CancelBooking(gomock.Any(), id).Return(nil, errs.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid state transition")
	})

	s.Run("error: 409 when beginning outside the window", func() {
		s.mockAllocator.EXPECT().BeginBooking(gomock.Any(), id).Return(nil, errs.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/begin", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockAllocator.EXPECT().GetBooking(gomock.Any(), id).Return(nil, errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}
