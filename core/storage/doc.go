// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface that covers what
// the user export needs: checking and creating the bucket and uploading objects.
// This abstraction supports both AWS S3 and self-hosted MinIO instances, and keeps
// storage interactions mockable (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
