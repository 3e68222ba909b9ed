package api

import (
	"net/http"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestQueries queries.GuestQueries
}

func NewGuestHandler(guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestQueries: guestQueries,
	}
}

// @Summary List guests
// @Description The guest directory with reservation counts, filtered by a name or email search
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email substring"
// @Param limit query int false "Max rows"
// @Success 200 {array} queries.GuestView
// @Failure 401 {object} map[string]string
// @Router /admin/guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	limit := intQueryDefault(c, "limit", queries.DefaultListLimit)

	views, err := h.guestQueries.List(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	if views == nil {
		views = []*queries.GuestView{}
	}
	c.JSON(http.StatusOK, views)
}
