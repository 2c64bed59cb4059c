package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"dhootha/config"
	"dhootha/orchestrator"
	"dhootha/present"
	"dhootha/types"
)

func newFetchCmd(cfg *config.Config) *cobra.Command {
	var (
		req    types.FetchRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one retrieval and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			// keep stdout for the result
			log.SetOutput(os.Stderr)

			f, err := orchestrator.NewFilter(req, types.Today())
			if err != nil {
				return err
			}

			c := buildComponents(cmd.Context(), *cfg)
			defer c.Close()

			res := c.retriever.Retrieve(cmd.Context(), f)
			view := c.presenter.Present(cmd.Context(), res, f.Language)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(present.FetchResponse{Result: res, View: view})
			}
			printView(out, res, view)
			if res.State == types.StateError {
				return fmt.Errorf("retrieval failed: %s", res.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Query, "query", "q", config.DefaultQuery, "search keyword")
	cmd.Flags().StringVarP(&req.Language, "language", "l", config.DefaultLanguage, "display language (name or code)")
	cmd.Flags().StringVarP(&req.Source, "source", "s", "", "news source (name or code, empty for all)")
	cmd.Flags().StringVarP(&req.Date, "date", "d", "", "day to search, YYYY-MM-DD (default today UTC)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result and cards as JSON")
	return cmd
}

func printView(w io.Writer, res *types.Result, view present.View) {
	fmt.Fprintln(w, res.Message)
	if view.Digest != "" {
		fmt.Fprintf(w, "\n%s\n", view.Digest)
	}
	for i, c := range view.Cards {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, c.Title)
		if c.Published != "" {
			fmt.Fprintf(w, "   %s · %s\n", c.Source, c.Published)
		} else {
			fmt.Fprintf(w, "   %s\n", c.Source)
		}
		if c.Summary != "" {
			fmt.Fprintf(w, "   %s\n", c.Summary)
		}
		fmt.Fprintf(w, "   %s\n", c.URL)
	}
}
