package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Room        *api.RoomHandler
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
	Unit        *api.UnitHandler
	Guest       *api.GuestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public site: catalog, quotes and checkout need no account.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.SearchRooms},
			{Method: http.MethodGet, Path: "/rooms/:slug", Handler: h.Room.GetRoom},
			{Method: http.MethodPost, Path: "/rooms/quote", Handler: h.Booking.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/units", Handler: h.Unit.ListUnits},
				{Method: http.MethodPost, Path: "/units", Handler: h.Unit.CreateUnit},
				{Method: http.MethodGet, Path: "/units/stats", Handler: h.Unit.Stats},
				{Method: http.MethodGet, Path: "/units/floors", Handler: h.Unit.Floors},
				{Method: http.MethodPatch, Path: "/units/:id/status", Handler: h.Unit.SetStatus},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListReservations},
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Booking.CreateManualBooking},
				{Method: http.MethodGet, Path: "/reservations/stats", Handler: h.Reservation.StatusCounts},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: h.Reservation.UpdateStay},
				{Method: http.MethodPost, Path: "/reservations/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/reservations/:id/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/reservations/:id/check-out", Handler: h.Reservation.CheckOut},
				{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},

				{Method: http.MethodGet, Path: "/guests", Handler: h.Guest.ListGuests},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
