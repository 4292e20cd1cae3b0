package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient relays uploaded files to a GCS bucket and returns
// durable public URLs. Object names double as the public ids clients use
// for deletion.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*UploadResult, error) {
	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), extensionFor(fileType))

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName),
		PublicID: objectName,
	}, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, publicID string) error {
	obj := c.client.Bucket(c.bucketName).Object(publicID)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func extensionFor(fileType string) string {
	switch strings.ToLower(fileType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
