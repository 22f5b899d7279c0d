package visit

import (
	"time"

	"tableflip.dev/moods/pkg/store"
)

// Backend persists cookies between runs. *store.KV satisfies it.
type Backend interface {
	Save(key string, value any) bool
	Load(key string, out any) bool
}

type storedCookie struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// StoreJar keeps cookies in the key-value store, for sessions that have no
// browser (the CLI). Expired cookies read as absent.
type StoreJar struct {
	backend Backend
	now     func() time.Time
	cookies map[string]storedCookie
}

// NewStoreJar loads the cookie map from backend.
func NewStoreJar(backend Backend, now func() time.Time) *StoreJar {
	if now == nil {
		now = time.Now
	}
	j := &StoreJar{
		backend: backend,
		now:     now,
		cookies: make(map[string]storedCookie),
	}
	if backend != nil {
		var stored map[string]storedCookie
		if backend.Load(store.KeyCookies, &stored) {
			for k, v := range stored {
				j.cookies[k] = v
			}
		}
	}
	return j
}

func (j *StoreJar) Get(name string) (string, bool) {
	c, ok := j.cookies[name]
	if !ok {
		return "", false
	}
	if !c.Expires.IsZero() && !j.now().Before(c.Expires) {
		delete(j.cookies, name)
		return "", false
	}
	return c.Value, true
}

func (j *StoreJar) Set(name, value string, ttl time.Duration) {
	j.cookies[name] = storedCookie{Value: value, Expires: j.now().Add(ttl)}
	j.flush()
}

func (j *StoreJar) flush() {
	if j.backend == nil {
		return
	}
	j.backend.Save(store.KeyCookies, j.cookies)
}
