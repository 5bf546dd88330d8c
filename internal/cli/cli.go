package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"skillforge/internal/app"

	"github.com/spf13/cobra"
)

// Opener builds the container a command runs against. Each command opens
// and closes its own container.
type Opener func(ctx context.Context) (*app.Container, error)

// NewRootCmd returns the skillctl command tree.
func NewRootCmd(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillctl",
		Short:         "skillctl - operator tooling for the skillforge service",
		Long:          `skillctl runs roster, staffing and project health queries directly against the configured store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Output in JSON format")

	root.AddCommand(exportRosterCmd(open))
	root.AddCommand(matchCmd(open))
	root.AddCommand(utilizationCmd(open))
	root.AddCommand(healthCmd(open))
	root.AddCommand(taxonomyCmd(open))

	return root
}

func withContainer(cmd *cobra.Command, open Opener, fn func(c *app.Container) error) (err error) {
	if open == nil {
		return errors.New("no container opener configured")
	}
	c, err := open(cmd.Context())
	if err != nil {
		return fmt.Errorf("init container: %w", err)
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()
	return fn(c)
}

func jsonOutput(cmd *cobra.Command) bool {
	on, _ := cmd.Flags().GetBool("json")
	return on
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
