package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// ValidationReport summarises a seed load.
type ValidationReport struct {
	Valid      bool             `json:"valid"`
	Products   int              `json:"products"`
	Categories int              `json:"categories"`
	Featured   int              `json:"featured_products"`
	Rejected   []RejectedRecord `json:"rejected,omitempty"`
}

// RejectedRecord is one record the loader dropped.
type RejectedRecord struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <seed>",
		Short: "Check a seed file and report rejected records",
		Long: `Load a seed file the way the server does and report every record that
would be rejected. Exits non-zero if any record is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, opts *RootOptions, seed string) error {
	store, err := loadStore(cmd.Context(), seed, opts.Landing)
	if err != nil {
		return err
	}
	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	report := newReport(snap)
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "%d products, %d categories, %d featured products\n",
			report.Products, report.Categories, report.Featured)
		for _, r := range snap.Rejected {
			fmt.Fprintf(out, "rejected %s\n", r)
		}
		if report.Valid {
			fmt.Fprintln(out, "✓ seed valid")
		}
	}

	if !report.Valid {
		return fmt.Errorf("%d record(s) rejected", len(report.Rejected))
	}
	return nil
}

func newReport(snap *domain.Snapshot) ValidationReport {
	report := ValidationReport{
		Valid:      len(snap.Rejected) == 0,
		Products:   len(snap.Products),
		Categories: len(snap.Categories),
		Featured:   len(snap.Landing.FeaturedProducts),
	}
	for _, r := range snap.Rejected {
		report.Rejected = append(report.Rejected, RejectedRecord{
			Kind:  r.Kind,
			Index: r.Index,
			ID:    r.ID,
			Error: r.Err.Error(),
		})
	}
	return report
}
