package cli

import (
	"fmt"
	"text/tabwriter"

	"skillforge/internal/app"
	"skillforge/internal/domain/utilization"
	"skillforge/internal/usecase"

	"github.com/spf13/cobra"
)

func matchCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank candidates for a project role",
		Long: `Score every active user against a role's skill requirements.

Examples:
  skillctl match --role=<role-id>
  skillctl match --role=<role-id> --min-score=60 --limit=3 --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roleID, err := uuidFlag(cmd, "role")
			if err != nil {
				return err
			}
			minScore, _ := cmd.Flags().GetFloat64("min-score")
			limit, _ := cmd.Flags().GetInt("limit")

			return withContainer(cmd, open, func(c *app.Container) error {
				cs, err := c.Usecases.Staffing.SearchUsersForRole(cmd.Context(), roleID, usecase.SearchParams{MinScore: minScore, Limit: limit})
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), cs)
				}
				if len(cs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No candidates found")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "#\tNAME\tMATCH\tUTILIZATION\tMISSING")
				for i, cand := range cs {
					fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t%d%% (%s)\t%d\n",
						i+1, cand.User.Name, cand.Match.MatchPercentage, cand.Utilization, cand.Level, len(cand.Match.MissingSkills))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().String("role", "", "Role ID")
	cmd.Flags().Float64("min-score", 0, "Drop candidates scoring below this percentage")
	cmd.Flags().Int("limit", 0, "Maximum number of candidates (0 for all)")
	return cmd
}

func utilizationCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Show a user's allocation across active assignments",
		Long: `Sum the allocation of a user's active assignments, optionally within a date window.

Examples:
  skillctl utilization --user=<user-id>
  skillctl utilization --user=<user-id> --start=2024-03-01 --end=2024-03-31
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuidFlag(cmd, "user")
			if err != nil {
				return err
			}
			start, err := dateFlag(cmd, "start")
			if err != nil {
				return err
			}
			end, err := dateFlag(cmd, "end")
			if err != nil {
				return err
			}

			return withContainer(cmd, open, func(c *app.Container) error {
				sum, err := c.Usecases.Staffing.GetUserUtilization(cmd.Context(), userID, utilization.Window{Start: start, End: end})
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), sum)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total utilization: %d%% (%s)\n", sum.TotalUtilization, sum.Level)
				for _, e := range sum.Assignments {
					fmt.Fprintf(out, "  %s / %s: %d%% (%s to %s)\n",
						e.ProjectName, e.RoleTitle, e.AllocationPercent,
						e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"))
				}
				return nil
			})
		},
	}
	cmd.Flags().String("user", "", "User ID")
	cmd.Flags().String("start", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Window end (YYYY-MM-DD)")
	return cmd
}
