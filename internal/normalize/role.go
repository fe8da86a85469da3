package normalize

import "github.com/ucampus/reservas-cli/internal/entity"

type RoleRecord struct {
	IDRol   *int `json:"ID_Rol,omitempty"`
	IDLower *int `json:"id,omitempty"`
	IDTitle *int `json:"Id,omitempty"`

	Nombre      string `json:"Nombre,omitempty"`
	NombreLower string `json:"nombre,omitempty"`
}

func Role(rec RoleRecord) (entity.Role, []string) {
	var issues []string

	id := firstInt(rec.IDRol, rec.IDLower, rec.IDTitle)
	if id == 0 {
		issues = append(issues, "role id missing under every alias")
	}

	return entity.Role{
		ID:   id,
		Name: firstString(rec.Nombre, rec.NombreLower),
	}, issues
}

// RolePayload is the body POST/PUT /Rols expects.
type RolePayload struct {
	Nombre string `json:"Nombre"`
}
