package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/reservation"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Validate the checkout form, price the stay server-side and create a pending reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if cardErrs := req.ValidatePayment(); len(cardErrs) > 0 {
		httperr.AbortWithFields(c, http.StatusUnprocessableEntity, errs.ErrDomainValidation, "Validation failed", cardErrs)
		return
	}

	created, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToInput(reservation.ChannelGuest))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedBooking(created))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var fieldErrs *commands.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		httperr.AbortWithFields(c, http.StatusUnprocessableEntity, err, "Validation failed", fieldErrs.Fields)
	case errors.Is(err, errs.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
	case errors.Is(err, errs.ErrRoomTypeInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Room is not bookable")
	case errors.Is(err, errs.ErrPartyTooLarge), errors.Is(err, errs.ErrNoAdultsInParty):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Party does not fit this room")
	case errors.Is(err, errs.ErrInvalidStayPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay dates")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

// @Summary Create manual reservation
// @Description Operator walk-in booking; enters as confirmed with no payment step
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManualBookingRequest true "Walk-in booking"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations [post]
func (h *BookingHandler) CreateManualBooking(c *gin.Context) {
	var req reqdto.ManualBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	created, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToInput(reservation.ChannelOperator))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedBooking(created))
}

// @Summary Quote stay
// @Description Price a prospective stay without creating anything
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	quote, err := h.bookingCommands.QuoteStay(c.Request.Context(), req.Room, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
		case errors.Is(err, errs.ErrInvalidStayPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay dates")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
