package play

import (
	"context"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/cmd/race"
	"github.com/golangdaddy/roadrush/pkg/game"
	"github.com/golangdaddy/roadrush/pkg/hud"
	"github.com/spf13/cobra"
)

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "opens a window and races",
		RunE: func(cmd *cobra.Command, args []string) error {
			return play()
		},
	}
	return cmd
}

func play() error {
	cfg := race.Settings
	overlay := hud.New(cfg.FPS, cfg.MaxSpeed())
	session, err := race.Open(cfg, overlay)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(context.Background()); err != nil {
			log.Warn("closing session", log.ErrorField(err))
		}
	}()

	return game.Run(game.NewGame(session.World, session.Sheets, overlay))
}
