package api

import (
	"net/http"

	"lounge-scheduler/internal/domain/machine"
	reqdto "lounge-scheduler/internal/handler/dto/request"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/usecase/scheduling"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	allocator scheduling.Allocator
}

func NewMachineHandler(allocator scheduling.Allocator) *MachineHandler {
	return &MachineHandler{allocator: allocator}
}

// @Summary Register machine
// @Description Register a machine; it starts available
// @Tags machines
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMachineRequest true "Machine"
// @Success 201 {object} resdto.MachineResponse
// @Failure 400 {object} httperr.Response
// @Router /machines [post]
func (h *MachineHandler) Create(c *gin.Context) {
	var req reqdto.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	m, err := h.allocator.RegisterMachine(c.Request.Context(), req.Name, machine.Category(req.Category))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/machines/"+m.ID().String())
	c.JSON(http.StatusCreated, resdto.FromMachine(m))
}

// @Summary List machines
// @Tags machines
// @Produce json
// @Success 200 {array} resdto.MachineResponse
// @Router /machines [get]
func (h *MachineHandler) List(c *gin.Context) {
	ms, err := h.allocator.ListMachines(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMachines(ms))
}

// @Summary Get machine
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {object} resdto.MachineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /machines/{id} [get]
func (h *MachineHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "machine")
	if !ok {
		return
	}
	m, err := h.allocator.GetMachine(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMachine(m))
}

// @Summary Apply operator event
// @Description Move a machine into or out of maintenance, or release a completed machine
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Machine ID"
// @Param request body reqdto.TransitionMachineRequest true "Event"
// @Success 200 {object} resdto.MachineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /machines/{id}/transitions [post]
func (h *MachineHandler) Transition(c *gin.Context) {
	id, ok := pathID(c, "machine")
	if !ok {
		return
	}
	var req reqdto.TransitionMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	m, err := h.allocator.TransitionMachine(c.Request.Context(), id, machine.Event(req.Event))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMachine(m))
}

// @Summary List machine bookings
// @Description All bookings of a machine, cancelled ones included, ordered by start
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /machines/{id}/bookings [get]
func (h *MachineHandler) Bookings(c *gin.Context) {
	id, ok := pathID(c, "machine")
	if !ok {
		return
	}
	bs, err := h.allocator.ListMachineBookings(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bs))
}
