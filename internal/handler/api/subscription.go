package api

import (
	"net/http"

	"lounge-scheduler/internal/domain/subscription"
	reqdto "lounge-scheduler/internal/handler/dto/request"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/usecase/expiry"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	engine expiry.Engine
	clock  clock.Clock
}

func NewSubscriptionHandler(engine expiry.Engine, clk clock.Clock) *SubscriptionHandler {
	return &SubscriptionHandler{engine: engine, clock: clk}
}

// @Summary Create subscription
// @Description Without expiresAt the subscription runs for one plan period from now
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req reqdto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	s, err := h.engine.Subscribe(c.Request.Context(), expiry.SubscribeRequest{
		OwnerID:        req.OwnerID,
		Plan:           subscription.Plan(req.Plan),
		MembershipType: req.MembershipType,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/subscriptions/"+s.ID().String())
	c.JSON(http.StatusCreated, resdto.FromSubscription(s, h.clock.Now()))
}

// @Summary Get subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}
	s, err := h.engine.GetSubscription(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscription(s, h.clock.Now()))
}

// @Summary Renew subscription
// @Description Extend by one plan period and clear outstanding renewal and expiry notices
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id}/renew [post]
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}
	now := h.clock.Now()
	s, err := h.engine.Renew(c.Request.Context(), id, now)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscription(s, now))
}

// @Summary Evaluate subscription
// @Description Emit the renewal or expiry notice due now, if any
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id}/evaluate [post]
func (h *SubscriptionHandler) Evaluate(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}
	ns, err := h.engine.Evaluate(c.Request.Context(), id, h.clock.Now(), h.engine.Threshold())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotifications(ns))
}

// @Summary List notifications
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id}/notifications [get]
func (h *SubscriptionHandler) Notifications(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}
	ns, err := h.engine.Notifications(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotifications(ns))
}

// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} resdto.NotificationResponse
// @Failure 404 {object} httperr.Response
// @Router /notifications/{id}/read [post]
func (h *SubscriptionHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "notification")
	if !ok {
		return
	}
	n, err := h.engine.MarkRead(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotification(n))
}
