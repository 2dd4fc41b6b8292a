package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"thirdcoast.systems/reelscout/internal/backend"
	"thirdcoast.systems/reelscout/internal/search"
	"thirdcoast.systems/reelscout/internal/table"
)

// viewFlags are the ranking and output flags shared by the video commands.
type viewFlags struct {
	opts    search.RankOptions
	weights table.Weights
	asc     bool
	desc2   bool
	asJSON  bool
	csvPath string
}

func (v *viewFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	w := table.DefaultWeights()
	f.BoolVar(&v.opts.UseScore, "score", false, "Rank by composite score first")
	f.Float64Var(&v.weights.Recency, "w-recency", w.Recency, "Score weight of recency")
	f.Float64Var(&v.weights.Views, "w-views", w.Views, "Score weight of views")
	f.Float64Var(&v.weights.Likes, "w-likes", w.Likes, "Score weight of likes")
	f.Float64Var(&v.weights.Shorts, "w-shorts", w.Shorts, "Score weight of being a Short")
	f.StringVar(&v.opts.Primary, "sort", "", "Primary sort column (default publishedAt)")
	f.BoolVar(&v.asc, "asc", false, "Sort the primary column ascending")
	f.StringVar(&v.opts.Secondary, "then", "", "Secondary sort column")
	f.BoolVar(&v.desc2, "then-desc", false, "Sort the secondary column descending")
	f.BoolVar(&v.asJSON, "json", false, "Print the view as columnar JSON")
	f.StringVar(&v.csvPath, "csv", "", "Also write the view to this CSV file")
}

func (v *viewFlags) render(cmd *cobra.Command, raw table.Table) error {
	opts := v.opts
	weights := v.weights
	opts.Weights = &weights
	if v.asc {
		opts.PrimaryOrder = search.OrderAsc
	}
	if v.desc2 {
		opts.SecondaryOrder = search.OrderDesc
	}
	if err := search.ValidateRank(opts); err != nil {
		return err
	}
	view := search.BuildView(raw, opts)

	if v.csvPath != "" {
		if err := writeCSVFile(v.csvPath, view); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if v.asJSON {
		return json.NewEncoder(out).Encode(view)
	}
	return writeVideos(out, view)
}

func writeCSVFile(path string, view table.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return table.WriteCSV(f, view)
}

func newVideosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Load YouTube result tables and rank them.",
	}
	cmd.AddCommand(newVideosSearchCmd(a), newVideosImportCmd())
	return cmd
}

func newVideosSearchCmd(a *app) *cobra.Command {
	var (
		req backend.Request
		vf  viewFlags
	)
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Run a keyword search on the hosted search backend.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			req.Keyword = args[0]
			raw, err := svc.Videos.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			return vf.render(cmd, raw)
		},
	}
	f := cmd.Flags()
	f.IntVar(&req.Days, "days", 7, "Look back this many days (1-30)")
	f.IntVar(&req.MaxResults, "max", 100, "Videos to consider (1-200)")
	f.IntVar(&req.TopN, "top", 10, "Videos to return (1-50)")
	f.StringVar(&req.RankBy, "rank-by", backend.RankScore, "Backend ranking (score, view_count, views_per_hour, like_count, likes_per_view)")
	vf.register(cmd)
	return cmd
}

func newVideosImportCmd() *cobra.Command {
	var vf viewFlags
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a CSV or JSON result file. Use - to read JSON from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw table.Table
				err error
			)
			if args[0] == "-" {
				raw, err = search.Import(cmd.InOrStdin(), "stdin.json")
			} else {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					return openErr
				}
				defer f.Close()
				raw, err = search.Import(f, args[0])
			}
			if err != nil {
				return err
			}
			return vf.render(cmd, raw)
		},
	}
	vf.register(cmd)
	return cmd
}
