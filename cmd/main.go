package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "voice-translator",
		Short:        "Transcribe, translate and re-voice audio stored in a bucket",
		SilenceUsage: true,
		// Lambda invokes the bare binary.
		RunE: runLambda,
	}
	cmd.AddCommand(newLambdaCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newTranslateCommand())
	return cmd
}
