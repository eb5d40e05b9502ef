package response

import (
	"time"

	"lounge-scheduler/internal/domain/report"
)

type MachineReport struct {
	Bookings     int   `json:"bookings"`
	Completed    int   `json:"completed"`
	RevenueCents int64 `json:"revenueCents"`
}

type ReportResponse struct {
	From                     time.Time                `json:"from"`
	To                       time.Time                `json:"to"`
	TotalBookings            int                      `json:"totalBookings"`
	CompletedBookings        int                      `json:"completedBookings"`
	CancelledBookings        int                      `json:"cancelledBookings"`
	TotalRevenueCents        int64                    `json:"totalRevenueCents"`
	AverageBookingValueCents float64                  `json:"averageBookingValueCents"`
	BookingsByStatus         map[string]int           `json:"bookingsByStatus"`
	BookingsByMachine        map[string]MachineReport `json:"bookingsByMachine"`
}

func FromMetrics(m *report.Metrics) *ReportResponse {
	byStatus := make(map[string]int, len(m.BookingsByStatus))
	for st, n := range m.BookingsByStatus {
		byStatus[st.String()] = n
	}
	byMachine := make(map[string]MachineReport, len(m.BookingsByMachine))
	for id, mm := range m.BookingsByMachine {
		byMachine[id.String()] = MachineReport{
			Bookings:     mm.Bookings,
			Completed:    mm.Completed,
			RevenueCents: mm.Revenue.Cents(),
		}
	}
	return &ReportResponse{
		From:                     m.Period.Start(),
		To:                       m.Period.End(),
		TotalBookings:            m.TotalBookings,
		CompletedBookings:        m.CompletedBookings,
		CancelledBookings:        m.CancelledBookings,
		TotalRevenueCents:        m.TotalRevenue.Cents(),
		AverageBookingValueCents: m.AverageBookingValue,
		BookingsByStatus:         byStatus,
		BookingsByMachine:        byMachine,
	}
}
