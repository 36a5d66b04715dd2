package main

import (
	"encoding/json"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/fasthttp/deeplink"
)

type matchResult struct {
	URL      string                    `json:"url"`
	Matched  bool                      `json:"matched"`
	Template string                    `json:"template,omitempty"`
	Path     map[string]deeplink.Value `json:"path,omitempty"`
	Query    map[string]deeplink.Value `json:"query,omitempty"`
	Fragment string                    `json:"fragment,omitempty"`
}

func matchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match URL...",
		Short: "Match URLs against the registry",
		Long: `Match each URL against the registry and print one JSON object per URL
with the winning template and the values it extracted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			r := deeplink.New(entries(cfg, func(name string) deeplink.Factory[matchResult] {
				return func(_ *url.URL, v deeplink.Values) (matchResult, error) {
					return matchResult{
						Matched:  true,
						Template: name,
						Path:     v.Path,
						Query:    v.Query,
						Fragment: v.Fragment,
					}, nil
				}
			})...)
			r.Logger = logger

			enc := json.NewEncoder(cmd.OutOrStdout())

			for _, raw := range args {
				res, _ := r.MatchString(raw)
				res.URL = raw

				if err := enc.Encode(res); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
