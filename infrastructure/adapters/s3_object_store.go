package adapters

import (
	"context"
	"io"
	"voice-translator-lambda/application/ports/outbound"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type s3ObjectStore struct {
	logger     outbound.LoggerPort
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

func NewS3ObjectStore(logger outbound.LoggerPort, s3Svc s3iface.S3API) outbound.ObjectStorePort {
	return &s3ObjectStore{
		logger:     logger,
		downloader: s3manager.NewDownloaderWithClient(s3Svc),
		uploader:   s3manager.NewUploaderWithClient(s3Svc),
	}
}

func (s *s3ObjectStore) Download(ctx context.Context, location outbound.ObjectLocation, dst io.WriterAt) (int64, error) {
	n, err := s.downloader.DownloadWithContext(ctx, dst, &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to download object from S3", map[string]interface{}{
			"bucket": location.Bucket,
			"key":    location.Key,
		})
		return 0, err
	}

	s.logger.DebugWithFields("Downloaded object from S3", map[string]interface{}{
		"bucket": location.Bucket,
		"key":    location.Key,
		"bytes":  n,
	})
	return n, nil
}

func (s *s3ObjectStore) Upload(ctx context.Context, req outbound.UploadObjectRequest) error {
	input := &s3manager.UploadInput{
		Bucket: aws.String(req.Bucket),
		Key:    aws.String(req.Key),
		Body:   req.Body,
	}
	if req.ContentType != "" {
		input.ContentType = aws.String(req.ContentType)
	}
	if len(req.Metadata) > 0 {
		input.Metadata = aws.StringMap(req.Metadata)
	}

	_, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": req.Bucket,
			"key":    req.Key,
		})
		return err
	}

	s.logger.DebugWithFields("Uploaded object to S3", map[string]interface{}{
		"bucket": req.Bucket,
		"key":    req.Key,
	})
	return nil
}
