package entity

// Availability is the outcome of an availability query. Available=false
// is a legitimate answer, not an error: the backend signals it with a
// 409 that carries the conflicting reservations.
type Availability struct {
	Available bool                  `json:"available"`
	Space     string                `json:"space"`
	Date      string                `json:"date"`
	StartTime string                `json:"startTime"`
	EndTime   string                `json:"endTime"`
	Message   string                `json:"message"`
	Conflicts []ReservationConflict `json:"conflicts,omitempty"`
}

type ReservationConflict struct {
	User      string `json:"user"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    Status `json:"status"`
}
