package normalize

import (
	"github.com/ucampus/reservas-cli/internal/entity"
)

// UserRecord mirrors every key spelling the backend has been observed
// using for a user. Distinct struct fields per spelling keep decoding
// lossless; coalescing happens in User.
type UserRecord struct {
	IDUsuario *int `json:"ID_Usuario,omitempty"`
	IDLower   *int `json:"id,omitempty"`
	IDTitle   *int `json:"Id,omitempty"`

	Nombre   string `json:"Nombre,omitempty"`
	Apellido string `json:"Apellido,omitempty"`

	Correo      string `json:"Correo,omitempty"`
	CorreoLower string `json:"correo,omitempty"`
	Email       string `json:"Email,omitempty"`
	EmailLower  string `json:"email,omitempty"`

	Rol string `json:"Rol,omitempty"`
}

// User resolves a loosely-shaped wire user into the canonical form.
// The returned issues name every field that had to be defaulted; a
// record that is already canonical produces none.
func User(rec UserRecord) (entity.User, []string) {
	var issues []string

	id := firstInt(rec.IDUsuario, rec.IDLower, rec.IDTitle)
	if id == 0 {
		issues = append(issues, "user id missing under every alias")
	}

	email := firstString(rec.Correo, rec.CorreoLower, rec.Email, rec.EmailLower)
	if email == "" {
		issues = append(issues, "user email missing under every alias")
	}

	return entity.User{
		ID:        id,
		FirstName: rec.Nombre,
		LastName:  rec.Apellido,
		Email:     email,
		Role:      rec.Rol,
	}, issues
}

// RecordFromUser rebuilds the primary-alias wire record for a canonical
// user. User(RecordFromUser(u)) round-trips without issues as long as
// id and email are set.
func RecordFromUser(u entity.User) UserRecord {
	rec := UserRecord{
		Nombre:   u.FirstName,
		Apellido: u.LastName,
		Correo:   u.Email,
		Rol:      u.Role,
	}

	if u.ID != 0 {
		id := u.ID
		rec.IDUsuario = &id
	}

	return rec
}

// UserPayload is the exact shape POST/PUT /Usuarios expects.
type UserPayload struct {
	Nombre     string `json:"Nombre"`
	Apellido   string `json:"Apellido"`
	Correo     string `json:"Correo"`
	Contrasena string `json:"Contraseña,omitempty"`
	Rol        string `json:"Rol"`
}

// UserPayloadFrom builds the outbound user body. The backend rejects a
// missing role, so it defaults to the plain user role.
func UserPayloadFrom(u entity.User, password string) UserPayload {
	role := u.Role
	if role == "" {
		role = entity.RoleUser
	}

	return UserPayload{
		Nombre:     u.FirstName,
		Apellido:   u.LastName,
		Correo:     u.Email,
		Contrasena: password,
		Rol:        role,
	}
}

// CredentialsPayload is the login body; the backend insists on the
// capitalized spellings.
type CredentialsPayload struct {
	Correo     string `json:"Correo"`
	Contrasena string `json:"Contraseña"`
}
