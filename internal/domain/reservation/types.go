package reservation

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// Channel identifies who created the booking. Guest-channel bookings enter as
// pending and need operator confirmation; operator-channel bookings carry
// guaranteed inventory and enter as confirmed.
type Channel string

const (
	ChannelGuest    Channel = "guest"
	ChannelOperator Channel = "operator"
)

func (c Channel) InitialStatus() Status {
	if c == ChannelOperator {
		return StatusConfirmed
	}
	return StatusPending
}

func (c Channel) IsValid() bool {
	return c == ChannelGuest || c == ChannelOperator
}
