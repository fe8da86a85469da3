package normalize_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "2025-09-10", want: "2025-09-10"},
		{name: "with time suffix", in: "2025-09-10T00:00:00", want: "2025-09-10"},
		{name: "with zoned time suffix", in: "2025-09-10T19:27:31.573Z", want: "2025-09-10"},
		{name: "empty", in: "", want: ""},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, normalize.FormatDate(tt.in))
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{name: "minutes only", in: "10:00", want: "10:00:00"},
		{name: "already has seconds", in: "10:00:30", want: "10:00:30"},
		{name: "empty", in: "", want: ""},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, normalize.FormatTime(tt.in))
		})
	}
}

func TestUser_AliasCoalescing(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		body      string
		wantID    int
		wantEmail string
	}{
		{
			name:      "primary aliases",
			body:      `{"ID_Usuario": 7, "Correo": "ana@uni.edu"}`,
			wantID:    7,
			wantEmail: "ana@uni.edu",
		},
		{
			name:      "lowercase aliases",
			body:      `{"id": 7, "correo": "ana@uni.edu"}`,
			wantID:    7,
			wantEmail: "ana@uni.edu",
		},
		{
			name:      "title case id with english email",
			body:      `{"Id": 7, "Email": "ana@uni.edu"}`,
			wantID:    7,
			wantEmail: "ana@uni.edu",
		},
		{
			name:      "primary alias wins over secondary",
			body:      `{"ID_Usuario": 7, "id": 9, "Correo": "a@uni.edu", "email": "b@uni.edu"}`,
			wantID:    7,
			wantEmail: "a@uni.edu",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rec normalize.UserRecord
			require.NoError(t, json.Unmarshal([]byte(tt.body), &rec))

			u, issues := normalize.User(rec)
			require.Empty(t, issues)
			require.Equal(t, tt.wantID, u.ID)
			require.Equal(t, tt.wantEmail, u.Email)
		})
	}
}

func TestUser_MissingFieldsReported(t *testing.T) {
	t.Parallel()

	u, issues := normalize.User(normalize.UserRecord{Nombre: "Ana"})

	require.Zero(t, u.ID)
	require.Empty(t, u.Email)
	require.Len(t, issues, 2)
}

func TestUser_RoundTrip(t *testing.T) {
	t.Parallel()

	want := entity.User{
		ID:        3,
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@uni.edu",
		Role:      entity.RoleProfessor,
	}

	got, issues := normalize.User(normalize.RecordFromUser(want))
	require.Empty(t, issues)
	require.Equal(t, want, got)
}

func TestUserPayloadFrom_DefaultsRole(t *testing.T) {
	t.Parallel()

	p := normalize.UserPayloadFrom(entity.User{Email: "ana@uni.edu"}, "secret")
	require.Equal(t, entity.RoleUser, p.Rol)
	require.Equal(t, "secret", p.Contrasena)

	p = normalize.UserPayloadFrom(entity.User{Role: entity.RoleAdministrator}, "")
	require.Equal(t, entity.RoleAdministrator, p.Rol)
}

func TestReservation_Defaults(t *testing.T) {
	t.Parallel()

	id := 12
	before := time.Now()

	r, issues := normalize.Reservation(normalize.ReservationRecord{
		IDReserva:  &id,
		Fecha:      "2025-09-10T00:00:00",
		HoraInicio: "10:00",
		HoraFin:    "12:00",
		Estado:     "EnRevision",
	})

	require.Equal(t, 12, r.ID)
	require.Equal(t, "2025-09-10", r.Date)
	require.Equal(t, "10:00:00", r.StartTime)
	require.Equal(t, "12:00:00", r.EndTime)

	// Unknown status and missing creation date degrade to defaults and
	// both substitutions are reported.
	require.Equal(t, entity.StatusPending, r.Status)
	require.False(t, r.CreatedAt.Before(before))
	require.Len(t, issues, 2)
}

func TestReservation_ParsesCreationTimestamps(t *testing.T) {
	t.Parallel()

	id := 1

	for _, tt := range []struct {
		name string
		in   string
	}{
		{name: "backend local time", in: "2025-07-29T19:27:31.573"},
		{name: "rfc3339", in: "2025-07-29T19:27:31Z"},
		{name: "date only", in: "2025-07-29"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, issues := normalize.Reservation(normalize.ReservationRecord{
				IDReserva:     &id,
				Estado:        "Pendiente",
				Fecha:         "2025-09-10",
				FechaCreacion: tt.in,
			})
			require.Empty(t, issues)
			require.Equal(t, 2025, r.CreatedAt.Year())
			require.Equal(t, time.July, r.CreatedAt.Month())
		})
	}
}

func TestReservationPayloadFrom_OwnerFallback(t *testing.T) {
	t.Parallel()

	base := entity.Reservation{
		SpaceID:   4,
		Date:      "2025-09-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		Status:    entity.StatusPending,
	}

	t.Run("reservation owner wins", func(t *testing.T) {
		t.Parallel()

		r := base
		r.UserID = 9
		r.UserName = "Luis Soto"

		p, issues := normalize.ReservationPayloadFrom(r, entity.User{ID: 3, FirstName: "Ana"})
		require.Empty(t, issues)
		require.Equal(t, 9, p.IDUsuario)
		require.Equal(t, "Luis Soto", p.NombreUsuario)
	})

	t.Run("session owner fills the gap", func(t *testing.T) {
		t.Parallel()

		p, issues := normalize.ReservationPayloadFrom(base, entity.User{ID: 3, FirstName: "Ana", LastName: "García"})
		require.Empty(t, issues)
		require.Equal(t, 3, p.IDUsuario)
		require.Equal(t, "Ana García", p.NombreUsuario)
	})

	t.Run("no owner at all substitutes the default and reports it", func(t *testing.T) {
		t.Parallel()

		p, issues := normalize.ReservationPayloadFrom(base, entity.User{})
		require.Len(t, issues, 1)
		require.Equal(t, 1, p.IDUsuario)
		require.Equal(t, "Usuario Desconocido", p.NombreUsuario)
	})

	t.Run("times are canonicalized", func(t *testing.T) {
		t.Parallel()

		p, _ := normalize.ReservationPayloadFrom(base, entity.User{ID: 3})
		require.Equal(t, "10:00:00", p.HoraInicio)
		require.Equal(t, "12:00:00", p.HoraFin)
	})
}

func TestAvailability_ConflictDecoding(t *testing.T) {
	t.Parallel()

	body := `{
		"Disponible": false,
		"Espacio": "Aula 101",
		"Fecha": "2025-09-10",
		"HoraInicio": "10:00:00",
		"HoraFin": "12:00:00",
		"mensaje": "El espacio no está disponible en el horario seleccionado",
		"reservasConflicto": [
			{"Usuario": "Luis Soto", "Hora_Inicio": "10:30:00", "Hora_Fin": "11:30:00", "Estado": "Aprobada"}
		]
	}`

	var rec normalize.AvailabilityRecord
	require.NoError(t, json.Unmarshal([]byte(body), &rec))

	a := normalize.Availability(rec)
	require.False(t, a.Available)
	require.Equal(t, "Aula 101", a.Space)
	require.NotEmpty(t, a.Message)
	require.Len(t, a.Conflicts, 1)
	require.Equal(t, "Luis Soto", a.Conflicts[0].User)
	require.Equal(t, "10:30:00", a.Conflicts[0].StartTime)
	require.Equal(t, entity.StatusApproved, a.Conflicts[0].Status)
}

func TestRole_Aliases(t *testing.T) {
	t.Parallel()

	var rec normalize.RoleRecord
	require.NoError(t, json.Unmarshal([]byte(`{"ID_Rol": 2, "Nombre": "profesor"}`), &rec))

	r, issues := normalize.Role(rec)
	require.Empty(t, issues)
	require.Equal(t, 2, r.ID)
	require.Equal(t, "profesor", r.Name)
}
