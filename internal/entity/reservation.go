package entity

import "time"

// Status of a reservation. The backend owns the real state machine;
// the client only offers transitions it knows to be legal.
type Status string

const (
	StatusPending  Status = "Pendiente"
	StatusApproved Status = "Aprobada"
	StatusRejected Status = "Rechazada"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether moving to the given status is legal.
// Only Pendiente may move, to either Aprobada or Rechazada; both of
// those are terminal.
func (s Status) CanTransition(to Status) bool {
	return s == StatusPending && (to == StatusApproved || to == StatusRejected)
}

// Reservation books a space for a half-open time interval on a date.
// Date is "2006-01-02" and the times are "15:04:05", the exact wire
// formats the backend expects.
type Reservation struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	SpaceID   int       `json:"spaceId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    Status    `json:"status"`
	UserName  string    `json:"userName"`
	SpaceName string    `json:"spaceName"`
	CreatedAt time.Time `json:"createdAt"`
}
