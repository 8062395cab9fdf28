package assessment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domainassessment "sitecheck/internal/domain/assessment"
	"sitecheck/internal/errs"
)

// timestampLayout is fixed width: every fraction digit is emitted, so
// lexical order on a stored timestamp column equals chronological order.
// RFC3339Nano would trim trailing zeros and break that.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func nowUTCString() string {
	return time.Now().UTC().Format(timestampLayout)
}

func todayUTCString() string {
	return time.Now().UTC().Format("2006-01-02")
}

func newID() string {
	return uuid.NewString()
}

func (s *Service) checkCall(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return errors.New("assessment repository is required")
	}
	return nil
}

func requireOwner(ownerID string) (string, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" {
		return "", domainassessment.ErrNotAuthenticated
	}
	return owner, nil
}
