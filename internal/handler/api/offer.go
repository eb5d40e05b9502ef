package api

import (
	"net/http"

	"lounge-scheduler/internal/domain/offer"
	reqdto "lounge-scheduler/internal/handler/dto/request"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/usecase/offers"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offers offers.Service
}

func NewOfferHandler(svc offers.Service) *OfferHandler {
	return &OfferHandler{offers: svc}
}

// @Summary Create offer
// @Description Store an offer. A malformed window is kept and reported as invalid.
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	v, err := h.offers.CreateOffer(c.Request.Context(), offers.CreateOfferRequest{
		Name:           req.Name,
		Category:       offer.Category(req.Category),
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
		MembershipType: req.MembershipType,
		AmountOffCents: req.AmountOffCents,
		PercentOff:     req.PercentOff,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/offers/"+v.Offer.ID().String())
	c.JSON(http.StatusCreated, resdto.FromOfferView(v))
}

// @Summary List offers
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.OfferResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	vs, err := h.offers.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferViews(vs))
}

// @Summary Get offer
// @Description Get an offer with its status evaluated now
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "offer")
	if !ok {
		return
	}
	v, err := h.offers.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(v))
}

// @Summary Revoke offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/revoke [post]
func (h *OfferHandler) Revoke(c *gin.Context) {
	id, ok := pathID(c, "offer")
	if !ok {
		return
	}
	v, err := h.offers.Revoke(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(v))
}
