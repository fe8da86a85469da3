package normalize

import (
	"time"

	"github.com/ucampus/reservas-cli/internal/entity"
)

type SpaceRecord struct {
	IDEspacio *int `json:"ID_Espacio,omitempty"`
	IDLower   *int `json:"id,omitempty"`
	IDTitle   *int `json:"Id,omitempty"`

	Nombre        string `json:"Nombre,omitempty"`
	Tipo          string `json:"Tipo,omitempty"`
	Ubicacion     string `json:"Ubicacion,omitempty"`
	Capacidad     int    `json:"Capacidad,omitempty"`
	FechaCreacion string `json:"FechaCreacion,omitempty"`
}

func Space(rec SpaceRecord) (entity.Space, []string) {
	var issues []string

	id := firstInt(rec.IDEspacio, rec.IDLower, rec.IDTitle)
	if id == 0 {
		issues = append(issues, "space id missing under every alias")
	}

	createdAt, ok := parseTimestamp(rec.FechaCreacion)
	if !ok {
		createdAt = time.Now()

		issues = append(issues, "space creation date missing, substituted current time")
	}

	return entity.Space{
		ID:        id,
		Name:      rec.Nombre,
		Type:      rec.Tipo,
		Location:  rec.Ubicacion,
		Capacity:  rec.Capacidad,
		CreatedAt: createdAt,
	}, issues
}

func RecordFromSpace(s entity.Space) SpaceRecord {
	rec := SpaceRecord{
		Nombre:        s.Name,
		Tipo:          s.Type,
		Ubicacion:     s.Location,
		Capacidad:     s.Capacity,
		FechaCreacion: s.CreatedAt.Format(time.RFC3339),
	}

	if s.ID != 0 {
		id := s.ID
		rec.IDEspacio = &id
	}

	return rec
}

// SpacePayload is the body POST/PUT /Espacios expects.
type SpacePayload struct {
	Nombre        string `json:"Nombre"`
	Tipo          string `json:"Tipo"`
	Ubicacion     string `json:"Ubicacion"`
	Capacidad     int    `json:"Capacidad"`
	FechaCreacion string `json:"FechaCreacion"`
}

func SpacePayloadFrom(s entity.Space) SpacePayload {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return SpacePayload{
		Nombre:        s.Name,
		Tipo:          s.Type,
		Ubicacion:     s.Location,
		Capacidad:     s.Capacity,
		FechaCreacion: createdAt.Format(time.RFC3339),
	}
}
