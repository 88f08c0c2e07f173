package gcs

import (
	"context"
	"fmt"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"time"

	"cloud.google.com/go/storage"
)

type GCSClient struct {
	Client     *storage.Client
	BucketName string
	FolderName string
}

type GcsInterface interface {
	UploadCSV(ctx context.Context, name string, data []byte) (string, error)
	Close(ctx context.Context)
}

func NewGCSClient(ctx context.Context, bucketName, folderName string) (GcsInterface, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSClient{
		Client:     client,
		BucketName: bucketName,
		FolderName: folderName,
	}, nil
}

func (g *GCSClient) Close(ctx context.Context) {
	if g.Client == nil {
		return
	}
	if err := g.Client.Close(); err != nil {
		logger.Error(ctx, "Error closing GCS client: %v", err)
	}
}

// UploadCSV writes the report under the configured folder and returns the
// object name. The DoesNotExist condition keeps a retried report generation
// from clobbering an already-written object.
func (g *GCSClient) UploadCSV(ctx context.Context, name string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s/%d_%s", g.FolderName, time.Now().Unix(), name)
	object := g.Client.Bucket(g.BucketName).Object(objectName)

	writer := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = "text/csv"
	if _, err := writer.Write(data); err != nil {
		logger.Error(ctx, "Error uploading report to GCS bucket: %v", err)
		return "", err
	}
	if err := writer.Close(); err != nil {
		logger.Error(ctx, "Error closing GCS writer: %v", err)
		return "", err
	}

	logger.Info(ctx, "Uploaded report to GCS bucket as %s", objectName)
	return objectName, nil
}
