package modelstore

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"model-srv/pkg/log"
)

// IModelStore defines the interface for fetching model artifacts from object
// storage into a local directory. Implementations are safe for concurrent use.
type IModelStore interface {
	// EnsureLocal downloads every named artifact that is missing under
	// localDir. Files already present locally always win.
	EnsureLocal(ctx context.Context, localDir string, files []string) error
	// HealthCheck verifies the bucket is reachable.
	HealthCheck(ctx context.Context) error
}

// NewModelStore creates a MinIO-backed model store. Returns the interface.
func NewModelStore(l log.Logger, cfg ModelStoreConfig) (IModelStore, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create MinIO client: %w", err)
	}

	return &modelStoreImpl{
		l:      l,
		client: client,
		config: cfg,
	}, nil
}
