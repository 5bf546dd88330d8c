package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skillforge/internal/app"

	"github.com/spf13/cobra"
)

func exportRosterCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-roster",
		Short: "Export the resource roster as CSV",
		Long: `Export every user with their skills as a CSV roster.

Examples:
  # Write to stdout
  skillctl export-roster

  # Write into a directory using the dated file name
  skillctl export-roster --dir ./exports
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return withContainer(cmd, open, func(c *app.Container) error {
				out, err := c.Usecases.Users.ExportRosterCSV(cmd.Context())
				if err != nil {
					return err
				}
				dir = strings.TrimSpace(dir)
				if dir == "" {
					_, err = cmd.OutOrStdout().Write(out.Content)
					return err
				}
				path := filepath.Join(dir, out.FileName)
				if err := os.WriteFile(path, out.Content, 0o644); err != nil {
					return fmt.Errorf("write roster: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Roster written to %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().String("dir", "", "Directory to write the roster file into (stdout when empty)")
	return cmd
}
