package cli

import (
	"fmt"
	"time"

	"skillforge/internal/app"

	"github.com/spf13/cobra"
)

func healthCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Evaluate a project's health",
		Long: `Evaluate team, contract, risk, dependency and document health for a project.

Examples:
  skillctl health --project=<project-id>
  skillctl health --project=<project-id> --as-of=2024-06-01 --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, err := uuidFlag(cmd, "project")
			if err != nil {
				return err
			}
			asOf, err := dateFlag(cmd, "as-of")
			if err != nil {
				return err
			}
			if asOf.IsZero() {
				asOf = time.Now().UTC()
			}

			return withContainer(cmd, open, func(c *app.Container) error {
				h, err := c.Usecases.Health.GetProjectHealth(cmd.Context(), projectID, asOf)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), h)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Overall:      %s\n", h.Overall)
				fmt.Fprintf(out, "Team:         %s\n", h.Team)
				fmt.Fprintf(out, "Contracts:    %s\n", h.Contracts)
				fmt.Fprintf(out, "Risk:         %s\n", h.Risk)
				fmt.Fprintf(out, "Dependencies: %s\n", h.Dependencies)
				fmt.Fprintf(out, "Documents:    %s\n", h.Documents)
				return nil
			})
		},
	}
	cmd.Flags().String("project", "", "Project ID")
	cmd.Flags().String("as-of", "", "Evaluation date (YYYY-MM-DD, defaults to today)")
	return cmd
}
