package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/catalog"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/spf13/cobra"
)

var (
	searchFilters catalog.Filters
	searchSort    string
	searchPage    int
	searchWait    time.Duration
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Browse the catalog of a running server",
}

var partsSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPartsSearch,
}

var partsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("uuid.Parse: %w", err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		part, err := client.GetPart(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("client.GetPart: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  %s\n", part.PartNumber, part.Name)
		fmt.Fprintf(w, "make: %s  category: %s  brand: %s  condition: %s\n", part.VehicleMake, part.Category, part.Brand, part.Condition)
		fmt.Fprintf(w, "price: %s  stock: %d\n", part.Price, part.Stock)
		if part.Description != "" {
			fmt.Fprintf(w, "\n%s\n", part.Description)
		}
		return nil
	},
}

func init() {
	f := partsSearchCmd.Flags()
	f.StringVar(&searchFilters.Make, "make", "", "Vehicle make")
	f.StringVar(&searchFilters.Category, "category", "", "Part category")
	f.StringVar(&searchFilters.Brand, "brand", "", "Part brand")
	f.StringVar(&searchFilters.Condition, "condition", "", "new, used or refurbished")
	f.StringVar(&searchFilters.MinPrice, "min-price", "", "Lowest price in MUR")
	f.StringVar(&searchFilters.MaxPrice, "max-price", "", "Highest price in MUR")
	f.BoolVar(&searchFilters.InStock, "in-stock", false, "Only parts in stock")
	f.StringVar(&searchSort, "sort", string(domain.DefaultSort), "name, price, -price, vehicleMake or category")
	f.IntVar(&searchPage, "page", 1, "Page to show")
	f.DurationVar(&searchWait, "wait", 30*time.Second, "How long to wait for results")

	partsCmd.AddCommand(partsSearchCmd, partsShowCmd)
}

func runPartsSearch(cmd *cobra.Command, args []string) error {
	sortBy, err := domain.ParseSortKey(searchSort)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), searchWait)
	defer cancel()

	changed := make(chan struct{}, 1)
	searcher := catalog.NewSearcher(client, logger,
		catalog.WithDebounce(cfg.Catalog.Debounce),
		catalog.WithOnChange(func(catalog.State) {
			select {
			case changed <- struct{}{}:
			default:
			}
		}))
	defer searcher.Close()

	want := searchFilters
	if len(args) == 1 {
		want.Search = args[0]
	}

	searcher.SetSort(sortBy)
	searcher.SetFilters(want)
	if want.Search != "" {
		searcher.SetSearchText(want.Search)
	}

	state, err := awaitState(ctx, searcher, changed, func(st catalog.State) bool {
		return st.Filters == want && st.SortBy == sortBy
	})
	if err != nil {
		return err
	}

	if page := catalog.ClampPage(searchPage, state.TotalPages); page != state.Page {
		searcher.GoToPage(page)
		state, err = awaitState(ctx, searcher, changed, func(st catalog.State) bool {
			return st.Page == page
		})
		if err != nil {
			return err
		}
	}

	if state.Status == catalog.StatusError {
		return fmt.Errorf("search: %w", state.Err)
	}

	printParts(cmd.OutOrStdout(), state)
	return nil
}

// awaitState blocks until the searcher settles in a state accepted by match.
func awaitState(ctx context.Context, searcher *catalog.Searcher, changed <-chan struct{}, match func(catalog.State) bool) (catalog.State, error) {
	for {
		state := searcher.State()
		if match(state) && settled(state.Status) {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return catalog.State{}, fmt.Errorf("waiting for results: %w", ctx.Err())
		case <-changed:
		}
	}
}

func settled(status catalog.Status) bool {
	switch status {
	case catalog.StatusReady, catalog.StatusEmpty, catalog.StatusError:
		return true
	}
	return false
}

func printParts(out io.Writer, state catalog.State) {
	if state.Status == catalog.StatusEmpty {
		fmt.Fprintln(out, "No parts found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPART NUMBER\tNAME\tMAKE\tCATEGORY\tCONDITION\tPRICE\tSTOCK")
	for _, p := range state.Parts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID, p.PartNumber, p.Name, p.VehicleMake, p.Category, p.Condition, p.Price, p.Stock)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\npage %d of %d, %d parts\n", state.Page, state.TotalPages, state.Total)
}
