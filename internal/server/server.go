// Package server exposes the portfolio page and its htmx endpoints over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hcconfig "github.com/tavsec/gin-healthcheck/config"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/view"
)

const pageKey = "page"

// Options wires a Server.
type Options struct {
	Store     *session.Store
	Content   *content.Content
	Logger    zerolog.Logger
	AssetsDir string
	Now       func() time.Time
}

// Server serves one portfolio site.
type Server struct {
	engine  *gin.Engine
	store   *session.Store
	content *content.Content
	log     zerolog.Logger
	now     func() time.Time
}

// New builds the router. The gin mode is taken from the global setting.
func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Content == nil {
		return nil, errors.New("server needs a session store and content")
	}
	s := &Server{
		store:   opts.Store,
		content: opts.Content,
		log:     opts.Logger.With().Str("component", "http").Logger(),
		now:     opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	salt, err := newSalt()
	if err != nil {
		return nil, fmt.Errorf("generating log salt: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log, salt))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(view.Static()))
	if opts.AssetsDir != "" {
		r.Static("/assets", opts.AssetsDir)
	}

	if err := healthcheck.New(r, hcconfig.DefaultConfig(), []checks.Check{storeCheck{s.store}}); err != nil {
		return nil, fmt.Errorf("registering health check: %w", err)
	}

	r.GET("/", s.index)
	r.POST("/s/:sid/close", s.closePage)

	pages := r.Group("/s/:sid")
	pages.Use(s.requirePage())
	pages.POST("/theme", s.toggleTheme)
	pages.POST("/menu", s.toggleMenu)
	pages.POST("/nav/:section", s.navigate)
	pages.POST("/reveal/:block", s.intersect)
	pages.POST("/contact/edit", s.editField)
	pages.POST("/contact", s.submitContact)

	s.engine = r
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down server")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requirePage resolves the page session. Expired pages ask htmx to reload,
// which mounts a fresh page.
func (s *Server) requirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.store.Get(c.Param("sid"))
		if err != nil {
			c.Header("HX-Refresh", "true")
			c.AbortWithStatus(http.StatusGone)
			return
		}
		c.Set(pageKey, p)
		c.Next()
	}
}

func page(c *gin.Context) *session.Page {
	return c.MustGet(pageKey).(*session.Page)
}

// render executes a template for p. Toasts are only drained by templates
// that display them.
func (s *Server) render(c *gin.Context, status int, name string, p *session.Page, withToasts bool) {
	data, err := view.Build(s.content, p.Snapshot(), nil, s.now())
	if err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("building page data")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if withToasts {
		data.Toasts = p.Toasts()
	}
	c.HTML(status, name, data)
}

type storeCheck struct {
	store *session.Store
}

func (storeCheck) Name() string { return "sessions" }

func (c storeCheck) Pass() bool { return c.store.Running() }
