package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tableflip.dev/moods/pkg/journal"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/view"
)

type selectForm struct {
	Mood string `form:"mood" json:"mood" binding:"required"`
}

type saveForm struct {
	Mood string `form:"mood" json:"mood"`
	Note string `form:"note" json:"note"`
}

type scrollForm struct {
	Position int `form:"position" json:"position"`
}

type permissionForm struct {
	Permission string `form:"permission" json:"permission" binding:"required"`
	// Request is set when the answer came from the enable button rather
	// than from a page load.
	Request bool `form:"request" json:"request"`
}

// Widget handlers

func (s *Server) handleIndex(c *gin.Context) {
	p := s.load(c.Request)
	s.render(c, p, http.StatusOK)
}

func (s *Server) handleSelect(c *gin.Context) {
	p := s.current(c.Request)

	var form selectForm
	if err := c.ShouldBind(&form); err != nil {
		s.fail(c, p, http.StatusBadRequest, err)
		return
	}
	m, err := mood.Parse(form.Mood)
	if err != nil {
		s.fail(c, p, http.StatusBadRequest, err)
		return
	}
	if err := p.session.Select(m); err != nil {
		s.fail(c, p, http.StatusBadRequest, err)
		return
	}
	s.render(c, p, http.StatusOK)
}

func (s *Server) handleSave(c *gin.Context) {
	p := s.current(c.Request)

	var form saveForm
	if err := c.ShouldBind(&form); err != nil {
		s.fail(c, p, http.StatusBadRequest, err)
		return
	}
	if form.Mood != "" {
		m, err := mood.Parse(form.Mood)
		if err != nil {
			s.fail(c, p, http.StatusBadRequest, err)
			return
		}
		if err := p.session.Select(m); err != nil {
			s.fail(c, p, http.StatusBadRequest, err)
			return
		}
	}

	if _, err := p.session.Save(form.Note); err != nil {
		if errors.Is(err, journal.ErrNoMood) {
			// the session already queued the warning alert
			s.render(c, p, http.StatusUnprocessableEntity)
			return
		}
		s.fail(c, p, http.StatusInternalServerError, err)
		return
	}
	s.render(c, p, http.StatusOK)
}

func (s *Server) handleScroll(c *gin.Context) {
	p := s.current(c.Request)

	var form scrollForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.session.Scroll(form.Position)
	p.jar.flush(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDismiss(c *gin.Context) {
	p := s.current(c.Request)
	p.session.DismissPrompt()
	s.render(c, p, http.StatusOK)
}

func (s *Server) handleChart(c *gin.Context) {
	p := s.current(c.Request)
	p.jar.flush(c)
	if p.surface.Drawn() == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", p.surface.Bytes())
}

// API handlers

func (s *Server) handleAPIMoods(c *gin.Context) {
	p := s.current(c.Request)
	entries := p.session.List()
	p.jar.flush(c)
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Server) handleAPITrend(c *gin.Context) {
	p := s.current(c.Request)
	spec := p.session.Trend()
	p.jar.flush(c)
	c.JSON(http.StatusOK, spec)
}

func (s *Server) handleAPINotifications(c *gin.Context) {
	p := s.current(c.Request)
	p.jar.flush(c)
	c.JSON(http.StatusOK, gin.H{
		"permission":    s.notifier.Permission(),
		"next":          nextReminder(p),
		"notifications": s.notifier.Drain(),
	})
}

func (s *Server) handleAPIPermission(c *gin.Context) {
	p := s.current(c.Request)

	var form permissionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.notifier.SetPermission(notify.ParsePermission(form.Permission))

	resp := gin.H{}
	if form.Request {
		if err := p.session.EnableNotifications(c.Request.Context()); err != nil {
			resp["error"] = err.Error()
		}
	} else {
		p.session.SyncPermission()
	}
	p.jar.flush(c)

	resp["permission"] = s.notifier.Permission()
	resp["scheduled"] = p.session.Scheduler().Running()
	resp["next"] = nextReminder(p)
	resp["showPrompt"] = p.session.PromptVisible()
	c.JSON(http.StatusOK, resp)
}

func nextReminder(p *page) *time.Time {
	sched := p.session.Scheduler()
	if sched == nil {
		return nil
	}
	next := sched.Next()
	if next.IsZero() {
		return nil
	}
	return &next
}

// render writes the page as HTML or JSON depending on Accept.
func (s *Server) render(c *gin.Context, p *page, code int) {
	pg := p.session.View()
	p.jar.flush(c)

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(code, pg)
	default:
		c.HTML(code, "index.html", gin.H{
			"page":     pg,
			"hasChart": !pg.Chart.Empty(),
			"chartRev": p.surface.Version(),
			"history":  pg.History,
		})
	}
}

// fail reports err as a warning alert on the page.
func (s *Server) fail(c *gin.Context, p *page, code int, err error) {
	pg := p.session.View()
	pg.Alert = &view.Alert{Kind: view.AlertWarning, Message: err.Error()}
	p.jar.flush(c)

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(code, gin.H{"error": err.Error(), "page": pg})
	default:
		c.HTML(code, "index.html", gin.H{
			"page":     pg,
			"hasChart": !pg.Chart.Empty(),
			"chartRev": p.surface.Version(),
			"history":  pg.History,
		})
	}
}
