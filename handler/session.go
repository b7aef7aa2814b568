package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/emzola/catalog/service"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
)

// Session is one browser's catalog screen.
type Session struct {
	ID      string
	Catalog *service.Catalog
	flash   *flash
}

// flash queues alerts until the next page render.
type flash struct {
	mu       sync.Mutex
	messages []string
}

// Alert implements service.Notifier.
func (f *flash) Alert(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
}

// drain returns the queued alerts and empties the queue.
func (f *flash) drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	messages := f.messages
	f.messages = nil
	return messages
}

// NewSessionStore returns the cache that holds sessions. Reading a session extends
// its lifetime; callers run Start to evict expired ones.
func NewSessionStore(ttl time.Duration) *ttlcache.Cache[string, *Session] {
	return ttlcache.New(ttlcache.WithTTL[string, *Session](ttl))
}

// sessionFor returns the session named by the request cookie, creating a new one
// (and setting the cookie) when there is none or it has expired.
func (h *Handler) sessionFor(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(h.config.Session.CookieName); err == nil {
		if item := h.sessions.Get(cookie.Value); item != nil {
			return item.Value()
		}
	}
	f := &flash{}
	s := &Session{
		ID:      uuid.NewString(),
		Catalog: h.service.NewCatalog(f),
		flash:   f,
	}
	h.sessions.Set(s.ID, s, ttlcache.DefaultTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.PrintDebug("session started", map[string]string{"session": s.ID})
	return s
}
