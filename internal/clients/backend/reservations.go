package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
)

func (c *Client) Reservations(ctx context.Context) ([]entity.Reservation, error) {
	return c.reservationList(ctx, "/Reservas")
}

func (c *Client) ReservationsByUser(ctx context.Context, userID int) ([]entity.Reservation, error) {
	return c.reservationList(ctx, "/Reservas/usuario/"+strconv.Itoa(userID))
}

// UserHistory and SpaceHistory hit the lowercase history endpoints; the
// backend routes them separately from the /Reservas collection.
func (c *Client) UserHistory(ctx context.Context, userID int) ([]entity.Reservation, error) {
	return c.reservationList(ctx, "/reservas/historial/usuario/"+strconv.Itoa(userID))
}

func (c *Client) SpaceHistory(ctx context.Context, spaceID int) ([]entity.Reservation, error) {
	return c.reservationList(ctx, "/reservas/historial/espacio/"+strconv.Itoa(spaceID))
}

func (c *Client) reservationList(ctx context.Context, path string) ([]entity.Reservation, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var recs []normalize.ReservationRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	reservations := make([]entity.Reservation, 0, len(recs))

	for _, rec := range recs {
		r, issues := normalize.Reservation(rec)
		logIssues(ctx, "reservation", issues)

		reservations = append(reservations, r)
	}

	return reservations, nil
}

func (c *Client) Reservation(ctx context.Context, id int) (entity.Reservation, error) {
	body, err := c.do(ctx, http.MethodGet, "/Reservas/"+strconv.Itoa(id), nil)
	if err != nil {
		return entity.Reservation{}, err
	}

	var rec normalize.ReservationRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.Reservation{}, fmt.Errorf("decode response: %w", err)
	}

	r, issues := normalize.Reservation(rec)
	logIssues(ctx, "reservation", issues)

	return r, nil
}

// CreateReservation books a space. The owner fills in the user fields
// the reservation itself lacks; any fabricated fallback is logged.
func (c *Client) CreateReservation(ctx context.Context, r entity.Reservation, owner entity.User) error {
	payload, issues := normalize.ReservationPayloadFrom(r, owner)
	logIssues(ctx, "reservation", issues)

	_, err := c.do(ctx, http.MethodPost, "/Reservas", payload)

	return err
}

func (c *Client) UpdateReservation(ctx context.Context, id int, r entity.Reservation, owner entity.User) error {
	payload, issues := normalize.ReservationPayloadFrom(r, owner)
	logIssues(ctx, "reservation", issues)

	_, err := c.do(ctx, http.MethodPut, "/Reservas/"+strconv.Itoa(id), payload)

	return err
}

func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/Reservas/"+strconv.Itoa(id), nil)

	return err
}

// Availability asks whether a space is free for the interval. The
// query string is built by hand: the backend chokes on encoded colons
// in the time parameters.
func (c *Client) Availability(ctx context.Context, spaceID int, date, start, end string) (entity.Availability, error) {
	query := fmt.Sprintf("espacioId=%d&fecha=%s&horaInicio=%s&horaFin=%s",
		spaceID, date, normalize.FormatTime(start), normalize.FormatTime(end))

	body, err := c.do(ctx, http.MethodGet, "/reservas/disponibilidad?"+query, nil)
	if err != nil {
		return entity.Availability{}, err
	}

	var rec normalize.AvailabilityRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.Availability{}, fmt.Errorf("decode response: %w", err)
	}

	return normalize.Availability(rec), nil
}
