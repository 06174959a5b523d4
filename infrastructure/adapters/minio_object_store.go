package adapters

import (
	"context"
	"fmt"
	"io"
	"voice-translator-lambda/application/ports/outbound"
	"voice-translator-lambda/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioObjectStore talks to S3-compatible servers such as a local MinIO.
type minioObjectStore struct {
	logger outbound.LoggerPort
	client *minio.Client
}

func NewMinioObjectStore(logger outbound.LoggerPort, minioConfig *config.MinioConfig) (outbound.ObjectStorePort, error) {
	client, err := minio.New(minioConfig.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioConfig.AccessKey, minioConfig.SecretKey, ""),
		Secure: minioConfig.UseSSL,
		Region: minioConfig.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init minio client: %w", err)
	}

	return &minioObjectStore{
		logger: logger,
		client: client,
	}, nil
}

func (m *minioObjectStore) Download(ctx context.Context, location outbound.ObjectLocation, dst io.WriterAt) (int64, error) {
	object, err := m.client.GetObject(ctx, location.Bucket, location.Key, minio.GetObjectOptions{})
	if err != nil {
		m.logger.ErrorWithFields(err, "Failed to get object from minio", map[string]interface{}{
			"bucket": location.Bucket,
			"key":    location.Key,
		})
		return 0, err
	}
	defer func(object *minio.Object) {
		err := object.Close()
		if err != nil {
			m.logger.Error(err, "Failed to close the minio object")
		}
	}(object)

	n, err := io.Copy(io.NewOffsetWriter(dst, 0), object)
	if err != nil {
		m.logger.ErrorWithFields(err, "Failed to read object from minio", map[string]interface{}{
			"bucket": location.Bucket,
			"key":    location.Key,
		})
		return 0, err
	}

	return n, nil
}

func (m *minioObjectStore) Upload(ctx context.Context, req outbound.UploadObjectRequest) error {
	_, err := m.client.PutObject(ctx, req.Bucket, req.Key, req.Body, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		m.logger.ErrorWithFields(err, "Failed to upload object to minio", map[string]interface{}{
			"bucket": req.Bucket,
			"key":    req.Key,
		})
		return err
	}

	return nil
}
