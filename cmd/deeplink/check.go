package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fasthttp/deeplink"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the registry",
		Long: `Validate the registry and list its templates from the highest priority
to the lowest. Templates of equal priority keep their registry order: when
both match a URL, the first one listed wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			list := entries(cfg, func(string) deeplink.Factory[struct{}] {
				return func(*url.URL, deeplink.Values) (struct{}, error) { return struct{}{}, nil }
			})

			slices.SortStableFunc(list, func(a, b deeplink.Entry[struct{}]) int {
				return deeplink.Compare(b.Template, a.Template)
			})

			for i := 1; i < len(list); i++ {
				if deeplink.Compare(list[i-1].Template, list[i].Template) == 0 {
					logger.Info("templates of equal priority",
						slog.String("first", list[i-1].Name),
						slog.String("second", list[i].Name),
					)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range list {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Template)
			}

			return w.Flush()
		},
	}
}
