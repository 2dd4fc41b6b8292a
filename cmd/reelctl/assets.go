package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/internal/search"
)

func newAssetsCmd(a *app) *cobra.Command {
	q := search.DefaultAssetQuery("")
	var (
		noPerson  bool
		landscape bool
		unsafe    bool
		asJSON    bool
		csvPath   string
		credits   bool
	)

	cmd := &cobra.Command{
		Use:   "assets <query>",
		Short: "Search stock and Creative Commons providers for photos and videos.",
		Long: `Searches Wikidata/Commons, Pexels, Pixabay, Openverse and YouTube
(Creative Commons only) and prints the results best first.

    $ reelctl assets "protest crowd" --type video --limit 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			q.Query = strings.Join(args, " ")
			q.Person = !noPerson
			q.PreferVertical = !landscape
			q.SafeSearch = !unsafe

			items, err := svc.Finder.Find(cmd.Context(), q)
			if err != nil {
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := media.WriteCSV(f, items); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			case credits:
				return writeCredits(out, items)
			default:
				return writeAssets(out, items)
			}
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&q.Types, "type", "t", q.Types, "Media types to search (photo, video)")
	f.StringSliceVarP(&q.Sources, "source", "s", q.Sources, "Providers to query")
	f.IntVarP(&q.Limit, "limit", "n", q.Limit, "Results requested per provider (1-50)")
	f.StringVar(&q.LicenseType, "license", q.LicenseType, "Openverse license filter (any, cc0, by, by-sa, ...)")
	f.BoolVar(&noPerson, "no-person", false, "Skip the Wikidata portrait lookup")
	f.BoolVar(&landscape, "landscape", false, "Prefer 16:9 over 9:16 media")
	f.BoolVar(&unsafe, "no-safe-search", false, "Disable safe search where supported")
	f.BoolVar(&asJSON, "json", false, "Print results as JSON")
	f.BoolVar(&credits, "credits", false, "Print a credit line per result")
	f.StringVar(&csvPath, "csv", "", "Also write the results' metadata CSV to this file")
	return cmd
}
