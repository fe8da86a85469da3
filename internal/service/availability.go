package service

import (
	"context"
	"errors"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
)

// unavailableFallback mirrors the backend's own wording when a 409
// arrives without a message.
const unavailableFallback = "El espacio no está disponible en el horario seleccionado"

// CheckAvailability asks whether a space is free for the interval.
// Every precondition is enforced locally first; a violated one reports
// a validation error and no network call happens. A 409 from the
// backend is a legitimate negative answer, returned as an unavailable
// result carrying the conflicting reservations, not as an error.
func (s *Service) CheckAvailability(ctx context.Context, spaceID int, date, start, end string) (entity.Availability, error) {
	if _, _, err := s.checker(); err != nil {
		return entity.Availability{}, err
	}

	if spaceID == 0 {
		return entity.Availability{}, entity.ErrSpaceRequired
	}

	if err := ValidateWindow(date, start, end, true); err != nil {
		return entity.Availability{}, err
	}

	result, err := s.api.Availability(ctx, spaceID, date, start, end)
	if err != nil {
		var conflict *entity.ConflictError
		if errors.As(err, &conflict) {
			msg := conflict.Message
			if msg == "" {
				msg = unavailableFallback
			}

			return entity.Availability{
				Available: false,
				Date:      normalize.FormatDate(date),
				StartTime: normalize.FormatTime(start),
				EndTime:   normalize.FormatTime(end),
				Message:   msg,
				Conflicts: conflict.Conflicts,
			}, nil
		}

		return entity.Availability{}, err
	}

	return result, nil
}
