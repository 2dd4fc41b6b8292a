package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thirdcoast.systems/reelscout/internal/keywords"
)

func newKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Keyword helpers.",
	}

	var (
		count int
		seed  uint64
	)
	draw := &cobra.Command{
		Use:   "draw <file>",
		Short: "Pick random keywords from a file with one keyword per line. Use - for stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			b, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			picked, err := keywords.Draw(strings.Split(string(b), "\n"), count, rng)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(picked, "\n"))
			return err
		},
	}
	draw.Flags().IntVarP(&count, "count", "n", 3, "Keywords to draw")
	draw.Flags().Uint64Var(&seed, "seed", 0, "Seed for a repeatable draw")
	cmd.AddCommand(draw)
	return cmd
}
