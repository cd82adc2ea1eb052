package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const statementContentType = "application/pdf"

// FileStorage uploads statement documents to an S3-compatible object store
// and mints presigned download links. Keys are random and never reused; the
// presigned link TTL is operator configuration and must cover the statement
// record's own expiry.
type FileStorage struct {
	client     *minio.Client
	bucketName string
	linkExpiry time.Duration
}

func NewFileStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool, linkExpiryMins int) (*FileStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	return &FileStorage{
		client:     client,
		bucketName: bucketName,
		linkExpiry: time.Duration(linkExpiryMins) * time.Minute,
	}, nil
}

func (s *FileStorage) Upload(ctx context.Context, document []byte) (string, error) {
	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + ".pdf"

	_, err := s.client.PutObject(
		ctx,
		s.bucketName,
		filename,
		bytes.NewReader(document),
		int64(len(document)),
		minio.PutObjectOptions{ContentType: statementContentType},
	)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code != "" {
			logger.Error("object storage upload rejected", err, logger.Fields{
				"bucket": s.bucketName,
				"code":   resp.Code,
			})
			return "", fmt.Errorf("%w: upload rejected by storage backend: %s", domain.ErrStorage, resp.Code)
		}
		logger.Error("object storage upload failed", err, logger.Fields{
			"bucket": s.bucketName,
		})
		return "", fmt.Errorf("%w: unexpected upload failure", domain.ErrStorage)
	}

	logger.Info("statement document uploaded", logger.Fields{
		"bucket":   s.bucketName,
		"filename": filename,
	})

	return filename, nil
}

func (s *FileStorage) PresignedLink(ctx context.Context, filename string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucketName, filename, s.linkExpiry, url.Values{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code != "" {
			logger.Error("presigned link generation rejected", err, logger.Fields{
				"bucket":   s.bucketName,
				"filename": filename,
				"code":     resp.Code,
			})
			return "", fmt.Errorf("%w: presign rejected by storage backend: %s", domain.ErrStorage, resp.Code)
		}
		logger.Error("presigned link generation failed", err, logger.Fields{
			"bucket":   s.bucketName,
			"filename": filename,
		})
		return "", fmt.Errorf("%w: unexpected presign failure", domain.ErrStorage)
	}

	logger.Info("presigned link generated", logger.Fields{
		"bucket":   s.bucketName,
		"filename": filename,
	})

	return presigned.String(), nil
}
