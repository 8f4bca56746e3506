package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/reveal"
)

// trigger raises a client-side event through htmx.
func trigger(c *gin.Context, event string, detail map[string]string) {
	b, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		return
	}
	c.Header("HX-Trigger", string(b))
}

// Home page: every load mounts a fresh page session.
func (s *Server) index(c *gin.Context) {
	p := s.store.Create()
	s.render(c, http.StatusOK, "index.html", p, true)
}

func (s *Server) closePage(c *gin.Context) {
	// beacons ignore the response; unknown pages are already gone
	_ = s.store.Close(c.Param("sid"))
	c.Status(http.StatusNoContent)
}

func (s *Server) toggleTheme(c *gin.Context) {
	p := page(c)
	p.ToggleTheme()
	s.render(c, http.StatusOK, "app", p, false)
}

func (s *Server) toggleMenu(c *gin.Context) {
	p := page(c)
	p.ToggleMenu()
	s.render(c, http.StatusOK, "header", p, false)
}

func (s *Server) navigate(c *gin.Context) {
	p := page(c)
	var target string
	if !p.Navigate(c.Param("section"), nav.ScrollerFunc(func(id string) { target = id })) {
		c.Status(http.StatusNoContent)
		return
	}
	trigger(c, "scrollTo", map[string]string{"section": target})
	s.render(c, http.StatusOK, "header", p, false)
}

// intersect receives the htmx intersect trigger. htmx only fires once the
// threshold is crossed, so a missing ratio counts as exactly the threshold.
func (s *Server) intersect(c *gin.Context) {
	ratio := reveal.Threshold
	if raw := c.PostForm("ratio"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			c.Status(http.StatusBadRequest)
			return
		}
		ratio = v
	}

	block := c.Param("block")
	visible, observed := page(c).Intersect(block, ratio)
	if observed && visible {
		trigger(c, "revealed", map[string]string{"block": block})
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) editField(c *gin.Context) {
	field := c.PostForm("field")
	if err := page(c).Form().Edit(field, c.PostForm(field)); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) submitContact(c *gin.Context) {
	p := page(c)
	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := p.Form().Submit(c.Request.Context(), &fields)
	switch {
	case errors.Is(err, contact.ErrIncomplete):
		c.Status(http.StatusUnprocessableEntity)
		return
	case errors.Is(err, contact.ErrSubmitting):
		c.Status(http.StatusConflict)
		return
	}
	if !p.Alive() {
		c.Status(http.StatusGone)
		return
	}
	// relay failures are already toasted and logged by the form
	s.render(c, http.StatusOK, "contact-response", p, true)
}
