// internal/application/usecase/common_usecase.go
package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("usecase: sign in required")
	ErrForbidden       = errors.New("usecase: forbidden")
	ErrNotApproved     = errors.New("usecase: store manager is waiting for approval")
	ErrInvalidArgument = errors.New("usecase: invalid argument")
	ErrNotConfigured   = errors.New("usecase: dependency not configured")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// IDGenerator hands out unique ids for new documents.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

func shortID(g IDGenerator) string {
	id := strings.ReplaceAll(g.NewID(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock{}
	}
	return c
}

func idsOrUUID(g IDGenerator) IDGenerator {
	if g == nil {
		return uuidGenerator{}
	}
	return g
}
