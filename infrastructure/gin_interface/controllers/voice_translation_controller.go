package controllers

import (
	"context"
	"errors"
	"net/http"
	"voice-translator-lambda/application/ports/inbound"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/domain"
	"voice-translator-lambda/infrastructure/gin_interface/dto"
	"voice-translator-lambda/middleware"

	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is reported when the caller goes away before the pipeline finishes.
const statusClientClosedRequest = 499

type VoiceTranslationController interface {
	CreateTranslation(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type voiceTranslationController struct {
	logger   outbound.LoggerPort
	pipeline inbound.VoiceTranslationPipelinePort
}

func NewVoiceTranslationController(
	logger outbound.LoggerPort,
	pipeline inbound.VoiceTranslationPipelinePort,
) VoiceTranslationController {
	return &voiceTranslationController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (v *voiceTranslationController) CreateTranslation(c *gin.Context) {
	var request dto.CreateTranslationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	logger := v.logger
	if userID := c.GetString(middleware.ContextUserIDKey); userID != "" {
		logger = logger.With(map[string]interface{}{"user_id": userID})
	}
	ctx := outbound.ContextWithLogger(c.Request.Context(), logger)

	ref, err := v.pipeline.Process(ctx, domain.InvocationRequest{
		Bucket:         request.Bucket,
		Key:            request.Key,
		SourceLanguage: request.SourceLanguage,
		TargetLanguage: request.TargetLanguage,
	})
	if err != nil {
		status := statusFor(err)
		logger.ErrorWithFields(err, "Voice translation failed", map[string]interface{}{
			"key":    request.Key,
			"status": status,
		})
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTranslationResponse{
		Bucket:        ref.Bucket,
		Key:           ref.Key,
		TranscriptKey: ref.TranscriptKey,
	})
}

func (v *voiceTranslationController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (v *voiceTranslationController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", v.Health)
	g.POST("/translations", v.CreateTranslation)
}

func statusFor(err error) int {
	var unsupported *domain.UnsupportedLanguageError
	var upstream *domain.UpstreamServiceError
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrInvalidRequest), errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
