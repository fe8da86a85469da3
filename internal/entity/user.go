package entity

import "strings"

// User is the canonical session/record shape after normalization.
// The backend returns the same user under several key spellings
// (ID_Usuario/id/Id, Correo/correo/Email/email); only the normalizer
// is allowed to produce this struct from wire data.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Matches reports whether both users refer to the same account:
// non-zero identifier equality or case-insensitive email equality.
// Email is the more reliable signal, the backend is inconsistent
// about which id field it fills in.
func (u User) Matches(other User) bool {
	if u.ID != 0 && other.ID != 0 && u.ID == other.ID {
		return true
	}

	if u.Email != "" && other.Email != "" && strings.EqualFold(u.Email, other.Email) {
		return true
	}

	return false
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
