package room

type ViewType string

const (
	ViewCity     ViewType = "city"
	ViewOcean    ViewType = "ocean"
	ViewGarden   ViewType = "garden"
	ViewMountain ViewType = "mountain"
)

func (v ViewType) String() string {
	return string(v)
}

type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
	UnitCleaning    UnitStatus = "cleaning"
)

func (s UnitStatus) String() string {
	return string(s)
}

func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitAvailable, UnitOccupied, UnitMaintenance, UnitCleaning:
		return true
	default:
		return false
	}
}

func NewUnitStatus(s string) (UnitStatus, error) {
	status := UnitStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidUnitStatus
	}
	return status, nil
}
