package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"covoit/internal/cache"
)

// Flash message keys shared between handlers.
const (
	KeySuccess = "successMessage"
	KeyError   = "errorMessage"
)

const (
	flashCookieName = "flash_sid"
	flashKeyPrefix  = "flash:"
	flashTTL        = 10 * time.Minute
)

// FlashStore holds one-shot messages in redis, keyed by an anonymous
// browser id. It replaces the source app's server-side session
// globals with an explicit take-and-clear contract.
type FlashStore struct {
	cache *cache.Client
}

// NewFlashStore creates a flash store on the shared redis client.
func NewFlashStore(cache *cache.Client) *FlashStore {
	return &FlashStore{cache: cache}
}

// Put stores a one-shot message for the given browser id.
func (s *FlashStore) Put(ctx context.Context, sid, key, message string) error {
	return s.cache.Set(ctx, flashKeyPrefix+sid+":"+key, []byte(message), flashTTL)
}

// TakeAndClear returns the message for key, if any, and removes it so
// it is shown at most once.
func (s *FlashStore) TakeAndClear(ctx context.Context, sid, key string) (string, bool) {
	redisKey := flashKeyPrefix + sid + ":" + key
	data, err := s.cache.Get(ctx, redisKey)
	if err != nil || data == nil {
		return "", false
	}
	_ = s.cache.Delete(ctx, redisKey)
	return string(data), true
}

// SID returns the browser id from the flash cookie, minting and
// setting one when absent.
func SID(c echo.Context) string {
	if cookie, err := c.Cookie(flashCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sid := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})
	return sid
}
