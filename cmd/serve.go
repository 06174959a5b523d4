package main

import (
	"voice-translator-lambda/config"
	"voice-translator-lambda/infrastructure/gin_interface/controllers"
	"voice-translator-lambda/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP trigger",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := bootstrap()
	if err != nil {
		log.Error().Err(err).Msg("Failed to bootstrap")
		return err
	}
	defer app.Release()

	serverConfig := config.GetServerConfig()

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Error().Err(err).Msg("Failed to set trusted proxies!")
		return err
	}

	if serverConfig.JwksURL != "" {
		authHandler, err := middleware.NewAuthHandler(app.logger, serverConfig.JwksURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create auth handler!")
			return err
		}
		defer authHandler.Close()
		router.Use(authHandler.AuthMiddleware())
	} else {
		app.logger.Warn("JWKS_URL is not set, requests are not authenticated")
	}

	controllers.NewVoiceTranslationController(app.logger, app.pipeline).RegisterRoutes(router)

	if err := router.Run(serverConfig.Addr); err != nil {
		log.Error().Err(err).Msg("Failed to start server!")
		return err
	}
	return nil
}
