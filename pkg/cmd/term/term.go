package term

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/cmd/race"
	"github.com/golangdaddy/roadrush/pkg/terminal"
	"github.com/spf13/cobra"
)

func NewTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "races inside the terminal",
		Long: `Draws the race with half block characters. Logs go to stderr,
redirect them (2>roadrush.log) to keep the screen clean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(cmd.Context())
		},
	}
	return cmd
}

func runTerm(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := race.Open(race.Settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(context.Background()); err != nil {
			log.Warn("closing session", log.ErrorField(err))
		}
	}()

	return terminal.NewRunner(session.World, session.Sheets, session.Readings).Run(ctx)
}
