package api

import (
	"errors"
	"time"

	"github.com/sambrend/nomer/internal/store"
)

type Handler struct {
	store        *store.Store
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	loginLimiter *attemptLimiter
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(domainStore *store.Store, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if domainStore == nil {
		return nil, errors.New("domain store is required")
	}
	if location == nil {
		location = time.Local
	}

	return &Handler{
		store:        domainStore,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
	}, nil
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
