package normalize

import "github.com/ucampus/reservas-cli/internal/entity"

// AvailabilityRecord carries the mixed-case fields of the availability
// endpoint: capitalized data fields next to a lowercase "mensaje".
type AvailabilityRecord struct {
	Disponible bool   `json:"Disponible"`
	Espacio    string `json:"Espacio,omitempty"`
	Fecha      string `json:"Fecha,omitempty"`
	HoraInicio string `json:"HoraInicio,omitempty"`
	HoraFin    string `json:"HoraFin,omitempty"`
	Mensaje    string `json:"mensaje,omitempty"`

	ReservasConflicto []ConflictRecord `json:"reservasConflicto,omitempty"`
}

// ConflictRecord uses yet another time spelling (Hora_Inicio) than the
// reservation payloads do.
type ConflictRecord struct {
	Usuario    string `json:"Usuario,omitempty"`
	HoraInicio string `json:"Hora_Inicio,omitempty"`
	HoraFin    string `json:"Hora_Fin,omitempty"`
	Estado     string `json:"Estado,omitempty"`
}

func Availability(rec AvailabilityRecord) entity.Availability {
	out := entity.Availability{
		Available: rec.Disponible,
		Space:     rec.Espacio,
		Date:      FormatDate(rec.Fecha),
		StartTime: FormatTime(rec.HoraInicio),
		EndTime:   FormatTime(rec.HoraFin),
		Message:   rec.Mensaje,
	}

	for _, c := range rec.ReservasConflicto {
		out.Conflicts = append(out.Conflicts, Conflict(c))
	}

	return out
}

func Conflict(rec ConflictRecord) entity.ReservationConflict {
	return entity.ReservationConflict{
		User:      rec.Usuario,
		StartTime: FormatTime(rec.HoraInicio),
		EndTime:   FormatTime(rec.HoraFin),
		Status:    entity.Status(rec.Estado),
	}
}
