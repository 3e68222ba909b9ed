package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewUnitHandler,
		api.NewGuestHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	reservation *api.ReservationHandler,
	unit *api.UnitHandler,
	guest *api.GuestHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Room:        room,
		Booking:     booking,
		Reservation: reservation,
		Unit:        unit,
		Guest:       guest,
	}
}
