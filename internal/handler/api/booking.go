package api

import (
	"context"
	"net/http"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/timewindow"
	reqdto "lounge-scheduler/internal/handler/dto/request"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/usecase/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	allocator scheduling.Allocator
}

func NewBookingHandler(allocator scheduling.Allocator) *BookingHandler {
	return &BookingHandler{allocator: allocator}
}

// @Summary Request booking
// @Description Admit a booking for a machine over a half-open time window
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	w, err := timewindow.New(req.StartTime, req.EndTime)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	b, err := h.allocator.RequestBooking(c.Request.Context(), scheduling.BookingRequest{
		MachineID:      req.MachineID,
		Customer:       req.GetCustomer(),
		Window:         w,
		OfferID:        req.OfferID,
		SubscriptionID: req.SubscriptionID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	h.apply(c, h.allocator.GetBooking)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.apply(c, h.allocator.CancelBooking)
}

// @Summary Begin booking
// @Description Record that the customer has started using the machine
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/begin [post]
func (h *BookingHandler) Begin(c *gin.Context) {
	h.apply(c, h.allocator.BeginBooking)
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.apply(c, h.allocator.CompleteBooking)
}

func (h *BookingHandler) apply(c *gin.Context, op func(context.Context, uuid.UUID) (*booking.Booking, error)) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}
	b, err := op(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
