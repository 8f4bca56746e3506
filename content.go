package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
)

func newContentCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage the portfolio content file",
	}
	cmd.AddCommand(newContentInitCmd())
	cmd.AddCommand(newContentCheckCmd(root))
	return cmd
}

func newContentInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in content as an editable YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "content.yml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			c := content.Default()
			if err := c.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s; set content_file to use it\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func newContentCheckCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a content file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := root.load()
				if err != nil {
					return err
				}
				path = cfg.ContentFile
			}
			c, err := content.Load(path)
			if err != nil {
				return err
			}
			if _, err := c.Profile.AboutHTML(); err != nil {
				return fmt.Errorf("rendering about text: %w", err)
			}
			if path == "" {
				path = "built-in content"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects, %d positions, ok\n", path, len(c.Projects), len(c.Experience))
			return nil
		},
	}
}
