// Package cli implements catalogctl, the offline tool for checking seed
// files and running catalog queries against them.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/repo"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format  string // "json" | "text"
	Landing string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for catalogctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect EcoFinds catalog seeds",
		Long:  "Validate catalog seed files and run product queries against them without a server.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Landing, "landing", "", "landing seed file")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}

// loadStore reads the seed files into a catalog store.
func loadStore(ctx context.Context, explorePath, landingPath string) (*repo.Store, error) {
	store := repo.NewStore(repo.NewFileSource(explorePath, landingPath), zap.NewNop(), clock.NewRealClock())
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
