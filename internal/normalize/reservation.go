package normalize

import (
	"time"

	"github.com/ucampus/reservas-cli/internal/entity"
)

// defaultOwnerID and defaultOwnerName are the historical fallback the
// backend tolerates when a reservation arrives without a resolvable
// owner. Substituting them is reported as a data-quality issue.
const (
	defaultOwnerID   = 1
	defaultOwnerName = "Usuario Desconocido"
)

type ReservationRecord struct {
	IDReserva *int `json:"ID_Reserva,omitempty"`
	IDLower   *int `json:"id,omitempty"`
	IDTitle   *int `json:"Id,omitempty"`

	IDUsuario *int `json:"ID_Usuario,omitempty"`
	IDEspacio *int `json:"ID_Espacio,omitempty"`

	Fecha      string `json:"Fecha,omitempty"`
	HoraInicio string `json:"HoraInicio,omitempty"`
	HoraFin    string `json:"HoraFin,omitempty"`
	Estado     string `json:"Estado,omitempty"`

	NombreUsuario string `json:"NombreUsuario,omitempty"`
	NombreEspacio string `json:"NombreEspacio,omitempty"`
	FechaCreacion string `json:"FechaCreacion,omitempty"`
}

func Reservation(rec ReservationRecord) (entity.Reservation, []string) {
	var issues []string

	id := firstInt(rec.IDReserva, rec.IDLower, rec.IDTitle)
	if id == 0 {
		issues = append(issues, "reservation id missing under every alias")
	}

	status := entity.Status(rec.Estado)
	if !status.Valid() {
		status = entity.StatusPending

		issues = append(issues, "reservation status missing or unknown, assumed Pendiente")
	}

	createdAt, ok := parseTimestamp(rec.FechaCreacion)
	if !ok {
		createdAt = time.Now()

		issues = append(issues, "reservation creation date missing, substituted current time")
	}

	return entity.Reservation{
		ID:        id,
		UserID:    firstInt(rec.IDUsuario),
		SpaceID:   firstInt(rec.IDEspacio),
		Date:      FormatDate(rec.Fecha),
		StartTime: FormatTime(rec.HoraInicio),
		EndTime:   FormatTime(rec.HoraFin),
		Status:    status,
		UserName:  rec.NombreUsuario,
		SpaceName: rec.NombreEspacio,
		CreatedAt: createdAt,
	}, issues
}

func RecordFromReservation(r entity.Reservation) ReservationRecord {
	rec := ReservationRecord{
		Fecha:         r.Date,
		HoraInicio:    r.StartTime,
		HoraFin:       r.EndTime,
		Estado:        string(r.Status),
		NombreUsuario: r.UserName,
		NombreEspacio: r.SpaceName,
		FechaCreacion: r.CreatedAt.Format(time.RFC3339),
	}

	if r.ID != 0 {
		id := r.ID
		rec.IDReserva = &id
	}

	if r.UserID != 0 {
		userID := r.UserID
		rec.IDUsuario = &userID
	}

	if r.SpaceID != 0 {
		spaceID := r.SpaceID
		rec.IDEspacio = &spaceID
	}

	return rec
}

// ReservationPayload is the body POST/PUT /Reservas expects, field
// names and formats taken verbatim from the backend contract.
type ReservationPayload struct {
	IDUsuario     int    `json:"ID_Usuario"`
	IDEspacio     int    `json:"ID_Espacio"`
	Fecha         string `json:"Fecha"`
	HoraInicio    string `json:"HoraInicio"`
	HoraFin       string `json:"HoraFin"`
	Estado        string `json:"Estado"`
	NombreUsuario string `json:"NombreUsuario"`
	NombreEspacio string `json:"NombreEspacio"`
	FechaCreacion string `json:"FechaCreacion"`
}

// ReservationPayloadFrom builds the outbound reservation body. The
// owner's id and display name come from the reservation itself, then
// from the session user, then from the historical fallback.
func ReservationPayloadFrom(r entity.Reservation, owner entity.User) (ReservationPayload, []string) {
	var issues []string

	userID := r.UserID
	userName := r.UserName

	if userID == 0 {
		userID = owner.ID
		userName = owner.FullName()
	}

	if userID == 0 {
		userID = defaultOwnerID

		issues = append(issues, "reservation owner unresolved, substituted default user")
	}

	if userName == "" {
		userName = defaultOwnerName
	}

	status := r.Status
	if !status.Valid() {
		status = entity.StatusPending
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return ReservationPayload{
		IDUsuario:     userID,
		IDEspacio:     r.SpaceID,
		Fecha:         FormatDate(r.Date),
		HoraInicio:    FormatTime(r.StartTime),
		HoraFin:       FormatTime(r.EndTime),
		Estado:        string(status),
		NombreUsuario: userName,
		NombreEspacio: r.SpaceName,
		FechaCreacion: createdAt.Format(time.RFC3339),
	}, issues
}
