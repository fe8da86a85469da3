// Package permission decides what the session user may do, from the
// role name alone plus, for self-service modules, identity equality.
//
// The decisions are advisory: they gate what the client offers, but the
// backend independently re-validates every mutation. A modified client
// can bypass all of this, so nothing here is a security boundary.
package permission

import (
	"strings"

	"github.com/ucampus/reservas-cli/internal/entity"
)

// Role is the closed variant the matrix is keyed by. Backend role
// names are free text, so parsing is case-insensitive and anything
// unknown collapses into RoleDefault.
type Role int

const (
	RoleDefault Role = iota
	RoleAdmin
	RoleProfessor
	RoleAssistant
)

func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case entity.RoleAdministrator:
		return RoleAdmin
	case entity.RoleProfessor:
		return RoleProfessor
	case entity.RoleAssistant:
		return RoleAssistant
	default:
		return RoleDefault
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return entity.RoleAdministrator
	case RoleProfessor:
		return entity.RoleProfessor
	case RoleAssistant:
		return entity.RoleAssistant
	default:
		return "default"
	}
}

type Module string

const (
	ModuleReservations Module = "reservas"
	ModuleSpaces       Module = "espacios"
	ModuleRoles        Module = "roles"
	ModuleUsers        Module = "usuarios"
)

type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionViewAll Action = "viewAll"
)

type actions map[Action]bool

// matrix is the static role → module → action table. Values mirror the
// backend's published access rules; viewAll only exists for usuarios.
var matrix = map[Role]map[Module]actions{
	RoleAdmin: {
		ModuleReservations: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ModuleSpaces:       {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ModuleRoles:        {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ModuleUsers:        {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionViewAll: true},
	},
	RoleProfessor: {
		ModuleReservations: {ActionView: true, ActionCreate: true},
		ModuleSpaces:       {ActionView: true},
		ModuleRoles:        {ActionView: true},
		ModuleUsers:        {ActionView: true, ActionEdit: true},
	},
	RoleAssistant: {
		ModuleReservations: {ActionView: true, ActionCreate: true},
		ModuleSpaces:       {ActionView: true},
		ModuleRoles:        {},
		ModuleUsers:        {ActionView: true, ActionEdit: true},
	},
	RoleDefault: {
		ModuleReservations: {ActionView: true},
		ModuleSpaces:       {ActionView: true},
		ModuleRoles:        {ActionView: true},
		ModuleUsers:        {ActionView: true, ActionEdit: true},
	},
}

// Checker answers permission questions for one session user. A nil
// user means no session and denies everything.
type Checker struct {
	user *entity.User
}

func NewChecker(user *entity.User) Checker {
	return Checker{user: user}
}

func (c Checker) Role() Role {
	if c.user == nil {
		return RoleDefault
	}

	return ParseRole(c.user.Role)
}

func (c Checker) IsAdmin() bool {
	return c.user != nil && c.Role() == RoleAdmin
}

// HasPermission looks the session user's role up in the static table,
// falling back to the default row for unknown roles.
func (c Checker) HasPermission(module Module, action Action) bool {
	if c.user == nil {
		return false
	}

	modules, ok := matrix[c.Role()]
	if !ok {
		modules = matrix[RoleDefault]
	}

	return modules[module][action]
}

// CanAccessRecord scopes a permission decision to one record. Admins
// may do anything. For the usuarios module, view and edit require the
// record to be the session user's own (id or email match) and delete
// is never allowed; every other module falls back to the role table.
func (c Checker) CanAccessRecord(module Module, record entity.User, action Action) bool {
	if c.user == nil {
		return false
	}

	if c.Role() == RoleAdmin {
		return true
	}

	if module == ModuleUsers {
		switch action {
		case ActionView, ActionEdit:
			return c.user.Matches(record)
		case ActionDelete:
			return false
		}
	}

	return c.HasPermission(module, action)
}
