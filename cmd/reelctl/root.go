package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"thirdcoast.systems/reelscout/internal/application"
	"thirdcoast.systems/reelscout/internal/config"
)

// app carries lazily built services between subcommands.
type app struct {
	svc *application.Services
}

func (a *app) services(ctx context.Context) (*application.Services, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	conf, err := config.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	svc, err := application.New(ctx, *conf)
	if err != nil {
		return nil, err
	}
	a.svc = svc
	return svc, nil
}

func (a *app) close() {
	if a.svc != nil {
		a.svc.Close()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "reelctl",
		Short: "Find reusable footage and rank YouTube search results.",
		Long: `reelctl searches stock and Creative Commons media providers for
footage, and loads YouTube result tables for ranking.

Provider keys and the search backend are read from the environment
(PEXELS_KEY, PIXABAY_KEY, YOUTUBE_API_KEY, YT_SEARCH_ENDPOINT).`,
		SilenceUsage: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	root.AddCommand(newAssetsCmd(a), newVideosCmd(a), newKeywordsCmd())
	return root
}
