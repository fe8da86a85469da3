package entity

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Role names are free text on the backend; these are the ones the
// permission matrix knows about. Anything else falls back to the
// default permission row.
const (
	RoleAdministrator = "administrador"
	RoleProfessor     = "profesor"
	RoleAssistant     = "ayudante"
	RoleUser          = "usuario"
)
