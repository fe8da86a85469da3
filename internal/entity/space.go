package entity

import "time"

type Space struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Space type labels as the backend stores them.
const (
	SpaceTypeClassroom   = "Aula"
	SpaceTypeLab         = "Laboratorio"
	SpaceTypeAuditorium  = "Auditorio"
	SpaceTypeMeetingRoom = "Sala de Reuniones"
	SpaceTypeLibrary     = "Biblioteca"
	SpaceTypeOther       = "Otro"
)

func KnownSpaceType(t string) bool {
	switch t {
	case SpaceTypeClassroom, SpaceTypeLab, SpaceTypeAuditorium,
		SpaceTypeMeetingRoom, SpaceTypeLibrary, SpaceTypeOther:
		return true
	default:
		return false
	}
}
