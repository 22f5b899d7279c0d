// Package web serves the mood widget to a browser.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/timeutil"
)

//go:embed templates/*.html
var templates embed.FS

// Backend is the key-value store behind the widget. *store.KV satisfies it.
type Backend = session.Backend

// Config wires a Server.
type Config struct {
	Backend  Backend
	Reminder timeutil.Clock
	Period   time.Duration
	Window   int
	Now      func() time.Time
	Log      *zap.Logger
}

// Server is the widget server. Each GET / is a page load: the previous page
// session is torn down and a new one opened with the request's cookies.
type Server struct {
	cfg      Config
	ctx      context.Context
	router   *gin.Engine
	notifier *QueueNotifier

	mu   sync.Mutex
	page *page
}

type page struct {
	session *session.Session
	jar     *cookieJar
	surface *SVGSurface
}

// NewServer builds the router. ctx bounds the reminder timers of the pages
// it opens.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Backend == nil {
		return nil, errors.New("web: server requires a backend")
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Log))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		cfg:      cfg,
		ctx:      ctx,
		router:   router,
		notifier: NewQueueNotifier(cfg.Backend),
	}

	// Widget routes
	router.GET("/", s.handleIndex)
	router.POST("/select", s.handleSelect)
	router.POST("/save", s.handleSave)
	router.POST("/scroll", s.handleScroll)
	router.POST("/notifications/dismiss", s.handleDismiss)
	router.GET("/chart.svg", s.handleChart)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/moods", s.handleAPIMoods)
		api.GET("/trend", s.handleAPITrend)
		api.GET("/notifications", s.handleAPINotifications)
		api.POST("/notifications/permission", s.handleAPIPermission)
	}

	return s, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Notifier is the browser notification queue.
func (s *Server) Notifier() *QueueNotifier {
	return s.notifier
}

// load opens a new page session, closing the previous one.
func (s *Server) load(r *http.Request) *page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page != nil {
		s.page.session.Close()
	}
	s.page = s.open(r)
	return s.page
}

// current returns the open page session, opening one for clients that post
// before ever loading the page.
func (s *Server) current(r *http.Request) *page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == nil {
		s.page = s.open(r)
	}
	return s.page
}

func (s *Server) open(r *http.Request) *page {
	p := &page{
		jar:     newCookieJar(r),
		surface: NewSVGSurface(),
	}
	p.session = session.Open(s.ctx, session.Deps{
		Backend:  s.cfg.Backend,
		Jar:      p.jar,
		Notifier: s.notifier,
		Surface:  p.surface,
		Reminder: s.cfg.Reminder,
		Period:   s.cfg.Period,
		Window:   s.cfg.Window,
		Now:      s.cfg.Now,
		Log:      s.cfg.Log,
	})
	return p
}

// Close tears down the open page session.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page != nil {
		s.page.session.Close()
		s.page = nil
	}
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string, onListening func(net.Addr)) error {
	defer s.Close()

	httpSrv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if onListening != nil {
		onListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("web: request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}
