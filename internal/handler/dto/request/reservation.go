package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

// TransitionRequest optionally carries a unit for confirm and check-in.
type TransitionRequest struct {
	UnitID *uuid.UUID `json:"unit_id,omitempty"`
}

type UpdateStayRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Adults   int    `json:"adults" binding:"required,min=1"`
	Children int    `json:"children" binding:"min=0"`
}

func (r UpdateStayRequest) ToInput() commands.UpdateStayInput {
	return commands.UpdateStayInput{
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Adults:   r.Adults,
		Children: r.Children,
	}
}
