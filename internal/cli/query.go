package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/params"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/list_products"
)

// queryFlags are the listing parameters accepted by the query command.
var queryFlags = []struct {
	name  string
	usage string
}{
	{params.Query, "search text"},
	{params.Category, "category id"},
	{params.Subcategory, "subcategory id"},
	{params.MinPrice, "minimum price"},
	{params.MaxPrice, "maximum price"},
	{params.Condition, "item condition"},
	{params.Brand, "brand name"},
	{params.EcoRatingMin, "minimum eco rating"},
	{params.Clearance, `"true" to list clearance items only`},
	{params.Sort, "newest|price_asc|price_desc|rating|most_loved"},
	{params.Page, "page number"},
	{params.Limit, "page size"},
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <seed>",
		Short: "Run a product listing query against a seed file",
		Long: `Run the product listing pipeline over a seed file. Flags take the same
values as the /api/products query string. JSON output is the API response.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, rootOpts, args[0])
		},
	}

	for _, f := range queryFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	return cmd
}

func runQuery(cmd *cobra.Command, opts *RootOptions, seed string) error {
	values := url.Values{}
	for _, f := range queryFlags {
		if flag := cmd.Flags().Lookup(f.name); flag.Changed {
			values.Set(f.name, flag.Value.String())
		}
	}

	criteria, err := params.Parse(values)
	if err != nil {
		return err
	}

	store, err := loadStore(cmd.Context(), seed, opts.Landing)
	if err != nil {
		return err
	}

	page, err := list_products.NewQuery(store).Execute(cmd.Context(), &list_products.Request{Criteria: criteria})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBRAND\tPRICE\tCONDITION\tECO")
	for _, p := range page.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%d\n", p.ID, p.Title, p.Brand, p.Price, p.Condition, p.EcoRating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "page %d of %d, %d matching\n", page.Page, page.TotalPages, page.Total)
	return nil
}
