package cli

import (
	"fmt"
	"strings"

	"skillforge/internal/app"

	"github.com/spf13/cobra"
)

func taxonomyCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Query the skill taxonomy",
	}
	cmd.AddCommand(taxonomySearchCmd(open))
	return cmd
}

func taxonomySearchCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search skills by name or synonym",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			query := strings.Join(args, " ")

			return withContainer(cmd, open, func(c *app.Container) error {
				hits, err := c.Usecases.Taxonomy.SearchSkills(cmd.Context(), query, limit)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), hits)
				}
				if len(hits) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No skills match %q\n", query)
					return nil
				}
				for _, h := range hits {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s / %s)\n", h.Skill, h.Category, h.Subcategory)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int("limit", 10, "Maximum number of results")
	return cmd
}
