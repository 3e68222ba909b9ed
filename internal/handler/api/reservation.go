package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary List reservations
// @Description List reservations newest first, optionally filtered by status
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	status := c.Query("status")
	if status == "All" {
		status = ""
	}
	page := intQueryDefault(c, "page", 1)
	limit := intQueryDefault(c, "limit", queries.DefaultListLimit)

	items, total, err := h.reservationQueries.List(c.Request.Context(), status, page, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	if items == nil {
		items = []*queries.ReservationListItem{}
	}
	c.JSON(http.StatusOK, resdto.ReservationListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Reservation status counts
// @Description Per-status totals for the reservations console
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ReservationStatusCounts
// @Failure 401 {object} map[string]string
// @Router /admin/reservations/stats [get]
func (h *ReservationHandler) StatusCounts(c *gin.Context) {
	counts, err := h.reservationQueries.StatusCounts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Get reservation
// @Description Full reservation detail including quote breakdown and guest info
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Confirm reservation
// @Description Move a pending reservation to confirmed, optionally assigning a unit
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest false "Optional unit assignment"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, unitID *uuid.UUID) error {
		return h.reservationCommands.Confirm(c.Request.Context(), id, unitID)
	}, "Reservation confirmed")
}

// @Summary Check in reservation
// @Description Open the stay; the hosting unit becomes occupied in the same transaction
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest false "Optional unit assignment"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, func(id uuid.UUID, unitID *uuid.UUID) error {
		return h.reservationCommands.CheckIn(c.Request.Context(), id, unitID)
	}, "Guest checked in")
}

// @Summary Check out reservation
// @Description Close the stay; the unit moves to cleaning, never straight to available
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.CheckOut(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest checked out"})
}

// @Summary Cancel reservation
// @Description Cancel from any non-terminal state, releasing an occupied unit
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

// @Summary Update stay
// @Description Edit dates and party on a pending or confirmed reservation; the price is recomputed
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStayRequest true "New stay"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/reservations/{id} [patch]
func (h *ReservationHandler) UpdateStay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.reservationCommands.UpdateStay(c.Request.Context(), id, req.ToInput()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated"})
}

func (h *ReservationHandler) transition(c *gin.Context, fn func(id uuid.UUID, unitID *uuid.UUID) error, okMsg string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.TransitionRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
			return
		}
	}

	if err := fn(id, req.UnitID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, errs.ErrRoomUnitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room unit not found")
	case errors.Is(err, errs.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
	case errors.Is(err, errs.ErrStateConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation state changed, refresh and retry")
	case errors.Is(err, errs.ErrStayNotStarted):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Stay has not started yet")
	case errors.Is(err, errs.ErrNoUnitAssigned):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No room unit assigned")
	case errors.Is(err, errs.ErrUnitNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room unit is not available")
	case errors.Is(err, errs.ErrPartyTooLarge), errors.Is(err, errs.ErrNoAdultsInParty):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Party does not fit this room")
	case errors.Is(err, errs.ErrInvalidStayPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay dates")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func intQueryDefault(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
