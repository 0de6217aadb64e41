package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"user-service/core/storage"
	"user-service/feature/users/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ExportPrefix is the object key prefix for user snapshots.
const ExportPrefix = "exports/"

// Snapshot is the document written by an export.
type Snapshot struct {
	ExportedAt time.Time     `json:"exportedAt"`
	Count      int           `json:"count"`
	Users      []models.User `json:"users"`
}

// Exporter writes JSON snapshots of all users to object storage.
type Exporter struct {
	repo   Repository
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	now    func() time.Time
}

// NewExporter creates an exporter writing to bucket.
func NewExporter(repo Repository, client storage.Client, bucket, region string, logger *zap.Logger) *Exporter {
	return &Exporter{
		repo:   repo,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Export uploads a snapshot and returns its object key.
func (e *Exporter) Export(ctx context.Context) (string, *Snapshot, error) {
	list, err := e.repo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("list users: %w", err)
	}

	snap := &Snapshot{ExportedAt: e.now(), Count: len(list), Users: list}
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, e.client, e.bucket, e.region); err != nil {
		return "", nil, err
	}

	key := ExportPrefix + "users-" + snap.ExportedAt.Format("20060102T150405Z") + ".json"
	_, err = e.client.PutObject(ctx, e.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", nil, fmt.Errorf("upload snapshot %s: %w", key, err)
	}

	e.logger.Info("Users exported",
		zap.String("bucket", e.bucket),
		zap.String("key", key),
		zap.Int("count", snap.Count),
	)
	return key, snap, nil
}
