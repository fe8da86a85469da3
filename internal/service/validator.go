package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
)

const EmailMaxLen = 255

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if email == "" {
		return entity.ErrEmailRequired
	}

	if len(email) > EmailMaxLen {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

// ValidateWindow checks a reservation/availability time window before
// any network call. requireFuture applies the no-past-dates rule, which
// only binds newly created reservations.
func ValidateWindow(date, start, end string, requireFuture bool) error {
	if date == "" {
		return entity.ErrDateRequired
	}

	if start == "" {
		return entity.ErrStartTimeRequired
	}

	if end == "" {
		return entity.ErrEndTimeRequired
	}

	// "HH:MM:SS" strings order lexicographically; the interval is
	// half-open, so equality is invalid too.
	if normalize.FormatTime(start) >= normalize.FormatTime(end) {
		return entity.ErrTimeOrder
	}

	day, err := time.Parse(normalize.DateLayout, normalize.FormatDate(date))
	if err != nil {
		return entity.ErrDateRequired
	}

	if requireFuture {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		if day.Before(today) {
			return entity.ErrDateInPast
		}
	}

	return nil
}

func ValidateSpace(s entity.Space) error {
	if strings.TrimSpace(s.Name) == "" {
		return entity.ErrNameRequired
	}

	if !entity.KnownSpaceType(s.Type) {
		return entity.ErrSpaceTypeUnknown
	}

	if s.Capacity <= 0 {
		return entity.ErrCapacityInvalid
	}

	return nil
}
