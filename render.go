package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/view"
)

var errStaticRelay = errors.New("static snapshots cannot send messages")

type renderOptions struct {
	output string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the HTML of a freshly loaded page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			c, err := content.Load(cfg.ContentFile)
			if err != nil {
				return err
			}

			if opts.output == "" || opts.output == "-" {
				return renderPage(cmd.OutOrStdout(), c, time.Now())
			}
			f, err := os.Create(opts.output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", opts.output, err)
			}
			if err := renderPage(f, c, time.Now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", opts.output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func renderPage(w io.Writer, c *content.Content, now time.Time) error {
	store := session.NewStore(session.Deps{
		Relay: contact.RelayFunc(func(context.Context, contact.Credentials, contact.Payload) error {
			return errStaticRelay
		}),
		Logger: zerolog.Nop(),
	}, 0)
	p := store.Create()
	defer store.Close(p.ID)

	tmpl, err := view.Templates()
	if err != nil {
		return err
	}
	data, err := view.Build(c, p.Snapshot(), nil, now)
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
