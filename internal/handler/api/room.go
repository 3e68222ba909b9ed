package api

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain/room"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary Search rooms
// @Description Search the active room catalog by party size, view, price band and sort order
// @Tags rooms
// @Produce json
// @Param adults query int false "Number of adults"
// @Param children query int false "Number of children"
// @Param view query string false "View type filter"
// @Param price query string false "Price band (all, budget, mid, luxury)"
// @Param sort query string false "Sort key (featured, price, rating, size)"
// @Success 200 {array} queries.RoomTypeView
// @Router /rooms [get]
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	query := room.Query{
		Adults:    intQuery(c, "adults"),
		Children:  intQuery(c, "children"),
		View:      c.Query("view"),
		PriceBand: room.PriceBand(c.DefaultQuery("price", string(room.BandAll))),
		Sort:      room.SortKey(c.DefaultQuery("sort", string(room.SortFeatured))),
	}

	views, err := h.roomQueries.Search(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	if views == nil {
		views = []*queries.RoomTypeView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get room
// @Description Get one active room type by slug
// @Tags rooms
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} queries.RoomTypeView
// @Failure 404 {object} map[string]string
// @Router /rooms/{slug} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	view, err := h.roomQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound) || errors.Is(err, errs.ErrRoomTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
