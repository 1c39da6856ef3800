package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const (
	uploadAttempts = 3
	uploadTimeout  = 10 * time.Second
)

type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient crée le client MinIO et le bucket s'il n'existe pas
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Upload écrit l'objet avec un nombre borné de tentatives et un délai maximum
// par tentative. En cas d'échec définitif l'erreur enveloppe ErrWriteFailed.
func (m *MinIOClient) Upload(ctx context.Context, filename string, data []byte, contentType string) error {
	var lastErr error
	for attempt := 0; attempt < uploadAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
		_, err := m.client.PutObject(attemptCtx, m.bucketName, filename,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: contentType})
		cancel()

		if err == nil {
			logrus.Infof("File %s uploaded successfully", filename)
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		logrus.Warnf("Upload attempt %d for %s failed: %v", attempt+1, filename, err)
	}
	return fmt.Errorf("%w: %v", ErrWriteFailed, lastErr)
}

// FileURL retourne une URL présignée valable une heure
func (m *MinIOClient) FileURL(ctx context.Context, filename string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, filename, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

func (m *MinIOClient) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucketName, filename, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return true, nil
}

func (m *MinIOClient) Delete(ctx context.Context, filename string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, filename, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	logrus.Infof("File %s deleted successfully", filename)
	return nil
}
