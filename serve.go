package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/session"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root)
		},
	}
}

func runServe(cmd *cobra.Command, root *rootFlags) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Human:  cfg.Log.Human,
		File:   cfg.Log.File,
		Writer: cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, log)
}

// serve runs the HTTP server and the session janitor until ctx is done or
// either of them fails.
func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	relay, creds := newRelay(cfg.Relay)
	log.Info().Str("provider", cfg.Relay.Provider).Msg("contact relay configured")

	gin.SetMode(cfg.Mode)
	store := session.NewStore(session.Deps{
		Relay:       relay,
		Credentials: creds,
		Logger:      log,
		MaxPages:    cfg.Session.MaxPages,
	}, cfg.Session.TTL)

	srv, err := server.New(server.Options{
		Store:     store,
		Content:   c,
		Logger:    log,
		AssetsDir: cfg.AssetsDir,
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx, cfg.Addr()) })
	g.Go(func() error { return store.Run(ctx, cfg.Session.Sweep) })
	return g.Wait()
}

func newRelay(cfg config.Relay) (contact.Relay, contact.Credentials) {
	creds := contact.Credentials{
		ServiceID:  cfg.ServiceID,
		TemplateID: cfg.TemplateID,
		PublicKey:  cfg.PublicKey,
	}
	if cfg.Provider == "smtp" {
		return contact.NewSMTPRelay(contact.SMTPConfig{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			To:   cfg.SMTP.To,
		}), creds
	}
	return contact.NewEmailJSRelay(cfg.Endpoint, cfg.PrivateKey, nil), creds
}
