package main

import (
	"voice-translator-lambda/infrastructure/lambda_interface"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLambdaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve invocations from the Lambda runtime",
		RunE:  runLambda,
	}
}

func runLambda(_ *cobra.Command, _ []string) error {
	app, err := bootstrap()
	if err != nil {
		log.Error().Err(err).Msg("Failed to bootstrap")
		return err
	}
	defer app.Release()

	handler := lambda_interface.NewHandler(app.logger, app.pipeline)
	lambda.Start(handler.Handle)
	return nil
}
