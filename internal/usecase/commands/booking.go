package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/guest"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FieldErrors carries every failed field from a booking submission so the
// caller can render all problems at once instead of one at a time.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "validation failed"
}

type CreateBookingInput struct {
	// RoomTypeRef is a slug or a room type uuid; slugs are what the public
	// site links carry.
	RoomTypeRef     string
	CheckIn         string // 2006-01-02
	CheckOut        string
	Adults          int
	Children        int
	FullName        string
	Email           string
	Phone           string
	SpecialRequests string
	Channel         reservation.Channel
}

// CreatedBooking is what the caller gets back after checkout: the reference
// code shown on the confirmation page and the server-computed price, which is
// authoritative over anything the client displayed.
type CreatedBooking struct {
	ReservationID uuid.UUID
	Reference     string
	Status        reservation.Status
	Quote         reservation.Quote
}

type BookingCommands interface {
	// CreateBooking validates, prices and persists a booking atomically: a
	// partially validated or unpriced reservation is never visible to the
	// caller.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreatedBooking, error)
	// QuoteStay prices a prospective stay without persisting anything.
	QuoteStay(ctx context.Context, roomTypeRef, checkIn, checkOut string) (*reservation.Quote, error)
}

type bookingCommandsImpl struct {
	roomRepo        RoomRepository
	guestRepo       GuestRepository
	reservationRepo ReservationRepository
	factory         *reservation.Factory
	db              TxBeginner
}

func NewBookingCommands(
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	reservationRepo ReservationRepository,
	factory *reservation.Factory,
	db TxBeginner,
) BookingCommands {
	return &bookingCommandsImpl{
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		reservationRepo: reservationRepo,
		factory:         factory,
		db:              db,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreatedBooking, error) {
	roomType, err := b.resolveRoomType(ctx, in.RoomTypeRef)
	if err != nil {
		return nil, err
	}

	fieldErrs := validation.Form(map[string]string{
		validation.FieldFullName:        in.FullName,
		validation.FieldEmail:           in.Email,
		validation.FieldPhone:           in.Phone,
		validation.FieldSpecialRequests: in.SpecialRequests,
	})
	if len(fieldErrs) > 0 {
		return nil, &FieldErrors{Fields: fieldErrs}
	}

	stay, err := parseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	party, err := reservation.NewParty(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNoAdultsInParty)
	}

	requests, err := reservation.NewSpecialRequests(in.SpecialRequests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	guestEntity, err := buildGuest(in)
	if err != nil {
		return nil, err
	}

	reservationEntity, err := b.factory.CreateReservation(
		roomType, guestEntity.ID(), stay, party, requests, in.Channel,
	)
	if err != nil {
		return nil, mapFactoryErr(err)
	}

	return b.persistBooking(ctx, guestEntity, reservationEntity)
}

func (b *bookingCommandsImpl) QuoteStay(ctx context.Context, roomTypeRef, checkIn, checkOut string) (*reservation.Quote, error) {
	roomType, err := b.resolveRoomType(ctx, roomTypeRef)
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	quote := b.factory.PriceCalculator.Quote(roomType.RateCents(), stay)
	return &quote, nil
}

// persistBooking upserts the guest and inserts the reservation in one
// transaction; either both land or neither does.
func (b *bookingCommandsImpl) persistBooking(
	ctx context.Context,
	guestEntity *guest.Guest,
	reservationEntity *reservation.Reservation,
) (*CreatedBooking, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	guestID, err := b.guestRepo.UpsertByEmail(ctx, tx, guestEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	reservationEntity = rebindGuest(reservationEntity, guestID)

	reservationID, err := b.reservationRepo.Create(ctx, tx, reservationEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}

	return &CreatedBooking{
		ReservationID: reservationID,
		Reference:     reservationEntity.Reference(),
		Status:        reservationEntity.Status(),
		Quote:         reservationEntity.Quote(),
	}, nil
}

func (b *bookingCommandsImpl) resolveRoomType(ctx context.Context, ref string) (*room.RoomType, error) {
	var snap *RoomTypeSnapshot
	var err error

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		snap, err = b.roomRepo.FindTypeByID(ctx, id)
	} else {
		snap, err = b.roomRepo.FindTypeBySlug(ctx, ref)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrRoomTypeNotFound)
	}

	return snapshotToRoomType(snap)
}

func snapshotToRoomType(snap *RoomTypeSnapshot) (*room.RoomType, error) {
	occupancy, err := room.NewOccupancy(snap.MaxAdults, snap.MaxChildren, snap.MaxGuests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return room.NewRoomType(
		snap.ID, snap.Slug, snap.Name, snap.RateCents, snap.SizeM2,
		room.ViewType(snap.ViewType), snap.Floor, snap.Rating,
		occupancy, snap.Amenities, snap.IsActive,
	)
}

func buildGuest(in CreateBookingInput) (*guest.Guest, error) {
	name, err := guest.NewNameFromFull(in.FullName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := guest.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := guest.NewPhone(in.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return guest.NewGuest(name, email, phone, ""), nil
}

func parseStay(checkIn, checkOut string) (reservation.StayPeriod, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return reservation.StayPeriod{}, err
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return reservation.StayPeriod{}, err
	}
	return reservation.NewStayPeriod(in, out)
}

func mapFactoryErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrRoomTypeInactive):
		return errs.Mark(err, errs.ErrRoomTypeInactive)
	case errors.Is(err, reservation.ErrPartyTooLarge):
		return errs.Mark(err, errs.ErrPartyTooLarge)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// rebindGuest rebuilds the reservation with the persisted guest id; the
// entity is created before the upsert resolves whether the email already
// belongs to a known guest.
func rebindGuest(r *reservation.Reservation, guestID uuid.UUID) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.Reference(), guestID, r.RoomTypeID(), r.RoomUnitID(),
		r.Stay(), r.Party(), r.SpecialRequests(), r.Quote(),
		r.Status(), r.Channel(), r.CreatedAt(), r.UpdatedAt(),
	)
}
