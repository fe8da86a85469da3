// Package service orchestrates the backend client, the normalizer, the
// session manager and the permission checker into the operations the
// CLI exposes. Permission gating here is advisory; the backend
// re-validates every mutation.
package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/ucampus/reservas-cli/internal/clients/backend"
	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
	"github.com/ucampus/reservas-cli/internal/session"
)

const recentReservationsLimit = 5

type Service struct {
	api      *backend.Client
	sessions *session.Manager
	log      *slog.Logger
}

func New(api *backend.Client, sessions *session.Manager, log *slog.Logger) *Service {
	return &Service{api: api, sessions: sessions, log: log}
}

// checker binds the permission table to the current session user.
func (s *Service) checker() (permission.Checker, entity.User, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return permission.NewChecker(nil), entity.User{}, entity.ErrNoSession
	}

	return permission.NewChecker(&user), user, nil
}

// DashboardStats aggregates the landing-page numbers.
type DashboardStats struct {
	TotalReservations    int
	PendingReservations  int
	ApprovedReservations int
	TotalSpaces          int
	TotalUsers           int
	Recent               []entity.Reservation
}

// Dashboard fetches reservations, spaces and users concurrently and
// waits for all three before aggregating; any failure fails the whole
// view, matching the all-or-nothing fetch the dashboard always had.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	if _, _, err := s.checker(); err != nil {
		return DashboardStats{}, err
	}

	var (
		wg sync.WaitGroup

		reservations []entity.Reservation
		spaces       []entity.Space
		users        []entity.User

		reservationsErr, spacesErr, usersErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		reservations, reservationsErr = s.api.Reservations(ctx)
	}()

	go func() {
		defer wg.Done()

		spaces, spacesErr = s.api.Spaces(ctx)
	}()

	go func() {
		defer wg.Done()

		users, usersErr = s.api.Users(ctx)
	}()

	wg.Wait()

	for _, err := range []error{reservationsErr, spacesErr, usersErr} {
		if err != nil {
			return DashboardStats{}, err
		}
	}

	stats := DashboardStats{
		TotalReservations: len(reservations),
		TotalSpaces:       len(spaces),
		TotalUsers:        len(users),
	}

	for _, r := range reservations {
		switch r.Status {
		case entity.StatusPending:
			stats.PendingReservations++
		case entity.StatusApproved:
			stats.ApprovedReservations++
		}
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})

	if len(reservations) > recentReservationsLimit {
		reservations = reservations[:recentReservationsLimit]
	}

	stats.Recent = reservations

	return stats, nil
}
