//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"lounge-scheduler/internal/handler/dto/request"
	"lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/tests/common/dbtest"
	"lounge-scheduler/tests/common/httptest"
	"lounge-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL        = "/api/bookings"
	machineBookingsURL = "/api/machines/%s/bookings"
	machineTransitions = "/api/machines/%s/transitions"
	cancelURL          = "/api/bookings/%s/cancel"
	reportRangeURL     = "/api/reports/range?from=%s&to=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// slot returns an hour-long window starting offset hours from the next whole hour.
func slot(offset int) (time.Time, time.Time) {
	base := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)
	start := base.Add(time.Duration(offset) * time.Hour)
	return start, start.Add(time.Hour)
}

func (s *BookingSuite) book(machineID uuid.UUID, start, end time.Time) (int, response.BookingResponse) {
	t := s.T()
	req := request.CreateBookingRequest{
		MachineID: machineID,
		Customer:  "kai@example.com",
		StartTime: start,
		EndTime:   end,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req)
	var body response.BookingResponse
	if w.Code == http.StatusCreated {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	}
	return w.Code, body
}

// =============================================================================
// TestAdmission
// =============================================================================

func (s *BookingSuite) TestAdmission() {
	s.Run("Normal case: free window is admitted and priced", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 01", "pc")
		start, end := slot(0)

		code, created := s.book(machineID, start, end)
		require.Equal(t, http.StatusCreated, code)

		want := response.BookingResponse{
			MachineID:  machineID,
			Customer:   "kai@example.com",
			StartTime:  start,
			EndTime:    end,
			Status:     "booked",
			PriceCents: s.Config.Pricing.DefaultHourlyRateCents,
		}
		opts := cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, created, opts, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping window is rejected with 409", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 02", "console")
		start, end := slot(2)

		code, _ := s.book(machineID, start, end)
		require.Equal(t, http.StatusCreated, code)

		code, _ = s.book(machineID, start.Add(30*time.Minute), end.Add(30*time.Minute))
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Boundary case: adjacent windows do not overlap", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 03", "vr")
		start, end := slot(4)

		code, _ := s.book(machineID, start, end)
		require.Equal(t, http.StatusCreated, code)
		code, _ = s.book(machineID, end, end.Add(time.Hour))
		require.Equal(t, http.StatusCreated, code)
		code, _ = s.book(machineID, start.Add(-time.Hour), start)
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Normal case: cancelled window can be booked again", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 04", "pc")
		start, end := slot(6)

		code, first := s.book(machineID, start, end)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, first.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		code, _ = s.book(machineID, start, end)
		require.Equal(t, http.StatusCreated, code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, first.ID), nil)
		require.Equal(t, http.StatusConflict, w.Code, "second cancel must be rejected")
	})

	s.Run("Error case: machine in maintenance rejects bookings", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 05", "simulator")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(machineTransitions, machineID),
			map[string]string{"event": "enter_maintenance"})
		require.Equal(t, http.StatusOK, w.Code)

		start, end := slot(8)
		code, _ := s.book(machineID, start, end)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: window in the past is rejected", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 06", "pc")
		start := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)

		code, _ := s.book(machineID, start, start.Add(time.Hour))
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Error case: unknown machine is 404", func() {
		start, end := slot(0)
		code, _ := s.book(uuid.New(), start, end)
		require.Equal(s.T(), http.StatusNotFound, code)
	})
}

// =============================================================================
// TestConcurrentAdmission
// =============================================================================

func (s *BookingSuite) TestConcurrentAdmission() {
	s.Run("Exactly one of many identical requests is admitted", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 07", "pc")
		start, end := slot(10)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i], _ = s.book(machineID, start, end)
			}()
		}
		wg.Wait()

		admitted := 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				admitted++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", c)
			}
		}
		require.Equal(t, 1, admitted)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(machineBookingsURL, machineID), nil)
		var list []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
	})
}

// =============================================================================
// TestExclusionConstraint
// =============================================================================

func (s *BookingSuite) TestExclusionConstraint() {
	s.Run("Database rejects overlapping rows written around the allocator", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 08", "pc")
		start, end := slot(12)
		dbtest.CreateTestBooking(t, s.DB, machineID, start, end, "booked", 1200)

		_, err := s.DB.Exec(context.Background(), `
			INSERT INTO bookings (id, machine_id, customer, starts_at, ends_at, status, price_cents, created_at, updated_at)
			VALUES ($1, $2, 'x', $3, $4, 'booked', 0, now(), now())`,
			uuid.New(), machineID, start.Add(15*time.Minute), end)
		require.Error(t, err)

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "bookings_no_overlap", pgErr.ConstraintName)

		dbtest.CreateTestBooking(t, s.DB, machineID, start.Add(15*time.Minute), end, "cancelled", 0)
	})
}

// =============================================================================
// TestReport
// =============================================================================

func (s *BookingSuite) TestReport() {
	s.Run("Range report counts every status and earns revenue on completed bookings", func() {
		t := s.T()
		machineID := dbtest.CreateTestMachine(t, s.DB, "Station 09", "pc")
		from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		for i, status := range []string{"completed", "completed", "completed", "cancelled"} {
			start := from.Add(time.Duration(i) * 2 * time.Hour)
			dbtest.CreateTestBooking(t, s.DB, machineID, start, start.Add(time.Hour), status, 100)
		}

		to := from.AddDate(0, 1, 0)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(reportRangeURL, from.Format(time.RFC3339), to.Format(time.RFC3339)), nil)

		var got response.ReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, 4, got.TotalBookings)
		require.Equal(t, 3, got.CompletedBookings)
		require.Equal(t, 1, got.CancelledBookings)
		require.Equal(t, int64(300), got.TotalRevenueCents)
		require.InDelta(t, 75.0, got.AverageBookingValueCents, 1e-9)
		require.Equal(t, 4, got.BookingsByMachine[machineID.String()].Bookings)
	})
}
