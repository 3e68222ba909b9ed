package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/room"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	unitCommands commands.UnitCommands
	unitQueries  queries.UnitQueries
}

func NewUnitHandler(unitCommands commands.UnitCommands, unitQueries queries.UnitQueries) *UnitHandler {
	return &UnitHandler{
		unitCommands: unitCommands,
		unitQueries:  unitQueries,
	}
}

// @Summary List units
// @Description The unit board, optionally narrowed by floor and status
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param floor query string false "Floor filter"
// @Param status query string false "Status filter"
// @Success 200 {array} queries.UnitView
// @Failure 401 {object} map[string]string
// @Router /admin/units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	views, err := h.unitQueries.List(c.Request.Context(), c.Query("floor"), c.Query("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	if views == nil {
		views = []*queries.UnitView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Unit stats
// @Description Per-status unit counts for the console KPI cards
// @Tags units
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UnitStats
// @Failure 401 {object} map[string]string
// @Router /admin/units/stats [get]
func (h *UnitHandler) Stats(c *gin.Context) {
	stats, err := h.unitQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List floors
// @Description Distinct floors that have units, for the board's floor filter
// @Tags units
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /admin/units/floors [get]
func (h *UnitHandler) Floors(c *gin.Context) {
	floors, err := h.unitQueries.Floors(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	if floors == nil {
		floors = []string{}
	}
	c.JSON(http.StatusOK, floors)
}

// @Summary Add unit
// @Description Register a physical unit under a room type
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUnitRequest true "Unit"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req reqdto.CreateUnitRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	unitID, err := h.unitCommands.AddUnit(c.Request.Context(), req.RoomTypeID, req.Number, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
		case errors.Is(err, errs.ErrDuplicateUnitNumber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Unit number already exists for this room")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid unit")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": unitID.String()})
}

// @Summary Set unit status
// @Description Move a unit between statuses; stale expectations are rejected
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.SetUnitStatusRequest true "Status change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/units/{id}/status [patch]
func (h *UnitHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.SetUnitStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	expected, err := room.NewUnitStatus(req.Expected)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit status")
		return
	}
	next, err := room.NewUnitStatus(req.Next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit status")
		return
	}

	if err := h.unitCommands.SetStatus(c.Request.Context(), id, expected, next); err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room unit not found")
		case errors.Is(err, errs.ErrUnitHasActiveStay):
			httperr.AbortWithError(c, http.StatusConflict, err, "Unit has an active reservation today")
		case errors.Is(err, errs.ErrStateConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Unit status changed, refresh and retry")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit status")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unit status updated"})
}
