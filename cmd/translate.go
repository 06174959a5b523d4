package main

import (
	"errors"
	"fmt"
	"strings"
	"voice-translator-lambda/application/services"
	"voice-translator-lambda/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	bucket string
	keys   []string
	source string
	target string
}

func newTranslateCommand() *cobra.Command {
	opts := &translateOptions{}
	long := fmt.Sprintf("Translate one or more audio objects and print the stored keys.\n\n"+
		"Source languages: %s\nTarget languages: %s",
		strings.Join(domain.SupportedSourceLanguages, ", "),
		strings.Join(domain.SupportedTargetLanguages, ", "))
	cmd := &cobra.Command{
		Use:     "translate",
		Short:   "Translate one or more audio objects and print the stored keys",
		Long:    long,
		Example: "  voice-translator translate --bucket media --key input/a.wav --key input/b.wav --source en --target fr",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTranslate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "bucket holding the input audio")
	cmd.Flags().StringArrayVar(&opts.keys, "key", nil, "input object key, repeatable")
	cmd.Flags().StringVar(&opts.source, "source", "en", "source language tag")
	cmd.Flags().StringVar(&opts.target, "target", "", "target language tag")
	_ = cmd.MarkFlagRequired("bucket")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func runTranslate(cmd *cobra.Command, opts *translateOptions) error {
	app, err := bootstrap()
	if err != nil {
		log.Error().Err(err).Msg("Failed to bootstrap")
		return err
	}
	defer app.Release()

	// The streaming transcriber borrows app.workerPool, so batch invocations get their own pool.
	batchPool, err := newWorkerPool(app.logger, app.pipelineConfig.WorkerPoolSize)
	if err != nil {
		return fmt.Errorf("failed to create batch worker pool: %w", err)
	}
	defer batchPool.Release()

	requests := make([]domain.InvocationRequest, 0, len(opts.keys))
	for _, key := range opts.keys {
		requests = append(requests, domain.InvocationRequest{
			Bucket:         opts.bucket,
			Key:            key,
			SourceLanguage: opts.source,
			TargetLanguage: opts.target,
		})
	}

	batch := services.NewBatchTranslator(app.logger, app.pipeline, batchPool)
	results, err := batch.Run(cmd.Context(), requests)
	if err != nil {
		return err
	}

	var failures []error
	out := cmd.OutOrStdout()
	for result := range results {
		if result.Err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", result.Request.Key, result.Err))
			continue
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", result.Request.Key, result.Ref.TranscriptKey, result.Ref.Key)
	}

	return errors.Join(failures...)
}
