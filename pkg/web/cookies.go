package web

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"tableflip.dev/moods/pkg/visit"
)

// cookieJar is a visit.Jar over the browser's cookies. Reads come from the
// request that opened the page; writes are queued and sent as Set-Cookie
// headers with the next response.
type cookieJar struct {
	mu      sync.Mutex
	values  map[string]string
	pending []*http.Cookie
}

var _ visit.Jar = (*cookieJar)(nil)

func newCookieJar(r *http.Request) *cookieJar {
	j := &cookieJar{values: map[string]string{}}
	if r == nil {
		return j
	}
	for _, c := range r.Cookies() {
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			continue
		}
		j.values[c.Name] = v
	}
	return j
}

func (j *cookieJar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	v, ok := j.values[name]
	return v, ok
}

func (j *cookieJar) Set(name, value string, ttl time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.values[name] = value
	j.pending = append(j.pending, &http.Cookie{
		Name:   name,
		Value:  value,
		MaxAge: int(ttl / time.Second),
	})
}

// flush writes queued cookies onto the response. It must run before the
// body is written.
func (j *cookieJar) flush(c *gin.Context) {
	j.mu.Lock()
	pending := j.pending
	j.pending = nil
	j.mu.Unlock()

	c.SetSameSite(http.SameSiteLaxMode)
	for _, ck := range pending {
		c.SetCookie(ck.Name, ck.Value, ck.MaxAge, "/", "", false, false)
	}
}
