package request

import "github.com/google/uuid"

type CreateUnitRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Number     string    `json:"number" binding:"required"`
	Note       string    `json:"note"`
}

// SetUnitStatusRequest carries the status the operator saw alongside the one
// they want, so a stale board loses to whoever moved the unit first.
type SetUnitStatusRequest struct {
	Expected string `json:"expected" binding:"required"`
	Next     string `json:"next" binding:"required"`
}
