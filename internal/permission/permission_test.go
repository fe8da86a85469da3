package permission_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
)

func checkerFor(role string) permission.Checker {
	return permission.NewChecker(&entity.User{ID: 5, Email: "ana@uni.edu", Role: role})
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want permission.Role
	}{
		{name: "admin", in: "administrador", want: permission.RoleAdmin},
		{name: "admin mixed case", in: "Administrador", want: permission.RoleAdmin},
		{name: "professor with spaces", in: "  profesor ", want: permission.RoleProfessor},
		{name: "assistant", in: "ayudante", want: permission.RoleAssistant},
		{name: "plain user", in: "usuario", want: permission.RoleDefault},
		{name: "unknown", in: "superusuario", want: permission.RoleDefault},
		{name: "empty", in: "", want: permission.RoleDefault},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, permission.ParseRole(tt.in))
		})
	}
}

func TestHasPermission_Matrix(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		role   string
		module permission.Module
		action permission.Action
		want   bool
	}{
		{name: "admin deletes spaces", role: "administrador", module: permission.ModuleSpaces, action: permission.ActionDelete, want: true},
		{name: "admin lists all users", role: "administrador", module: permission.ModuleUsers, action: permission.ActionViewAll, want: true},
		{name: "professor creates reservations", role: "profesor", module: permission.ModuleReservations, action: permission.ActionCreate, want: true},
		{name: "professor cannot edit reservations", role: "profesor", module: permission.ModuleReservations, action: permission.ActionEdit, want: false},
		{name: "professor cannot create spaces", role: "profesor", module: permission.ModuleSpaces, action: permission.ActionCreate, want: false},
		{name: "professor cannot list all users", role: "profesor", module: permission.ModuleUsers, action: permission.ActionViewAll, want: false},
		{name: "assistant creates reservations", role: "ayudante", module: permission.ModuleReservations, action: permission.ActionCreate, want: true},
		{name: "assistant cannot view roles", role: "ayudante", module: permission.ModuleRoles, action: permission.ActionView, want: false},
		{name: "plain user views reservations", role: "usuario", module: permission.ModuleReservations, action: permission.ActionView, want: true},
		{name: "plain user cannot create reservations", role: "usuario", module: permission.ModuleReservations, action: permission.ActionCreate, want: false},
		{name: "plain user edits own profile", role: "usuario", module: permission.ModuleUsers, action: permission.ActionEdit, want: true},
		{name: "unknown role falls back to default row", role: "superusuario", module: permission.ModuleReservations, action: permission.ActionView, want: true},
		{name: "unknown role gets no create", role: "superusuario", module: permission.ModuleReservations, action: permission.ActionCreate, want: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, checkerFor(tt.role).HasPermission(tt.module, tt.action))
		})
	}
}

func TestHasPermission_NoSession(t *testing.T) {
	t.Parallel()

	c := permission.NewChecker(nil)

	require.False(t, c.HasPermission(permission.ModuleReservations, permission.ActionView))
	require.False(t, c.CanAccessRecord(permission.ModuleUsers, entity.User{}, permission.ActionView))
	require.False(t, c.IsAdmin())
}

func TestCanAccessRecord_Users(t *testing.T) {
	t.Parallel()

	own := entity.User{ID: 5, Email: "ana@uni.edu"}
	other := entity.User{ID: 8, Email: "luis@uni.edu"}

	for _, tt := range []struct {
		name   string
		role   string
		record entity.User
		action permission.Action
		want   bool
	}{
		{name: "admin reads any record", role: "administrador", record: other, action: permission.ActionView, want: true},
		{name: "admin deletes any record", role: "administrador", record: other, action: permission.ActionDelete, want: true},
		{name: "professor edits own record", role: "profesor", record: own, action: permission.ActionEdit, want: true},
		{name: "professor cannot edit others", role: "profesor", record: other, action: permission.ActionEdit, want: false},
		{name: "professor cannot delete even own record", role: "profesor", record: own, action: permission.ActionDelete, want: false},
		{name: "plain user views own record", role: "usuario", record: own, action: permission.ActionView, want: true},
		{name: "plain user cannot view others", role: "usuario", record: other, action: permission.ActionView, want: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, checkerFor(tt.role).CanAccessRecord(permission.ModuleUsers, tt.record, tt.action))
		})
	}
}

func TestCanAccessRecord_EmailMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	// The record carries no id, only a differently-cased email.
	record := entity.User{Email: "ANA@UNI.EDU"}

	c := checkerFor("profesor")
	require.True(t, c.CanAccessRecord(permission.ModuleUsers, record, permission.ActionEdit))
}

func TestCanAccessRecord_OtherModulesUseRoleTable(t *testing.T) {
	t.Parallel()

	c := checkerFor("profesor")

	require.True(t, c.CanAccessRecord(permission.ModuleSpaces, entity.User{}, permission.ActionView))
	require.False(t, c.CanAccessRecord(permission.ModuleSpaces, entity.User{}, permission.ActionDelete))
}
