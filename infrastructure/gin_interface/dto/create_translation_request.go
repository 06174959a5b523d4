package dto

type CreateTranslationRequest struct {
	Bucket         string `json:"bucket" binding:"required"`
	Key            string `json:"key" binding:"required"`
	SourceLanguage string `json:"sourceLanguage" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
}

type CreateTranslationResponse struct {
	Bucket        string `json:"bucket"`
	Key           string `json:"key"`
	TranscriptKey string `json:"transcriptKey"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
