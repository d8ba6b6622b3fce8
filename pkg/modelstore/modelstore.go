package modelstore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// EnsureLocal downloads missing artifacts from the bucket prefix into localDir.
func (s *modelStoreImpl) EnsureLocal(ctx context.Context, localDir string, files []string) error {
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return fmt.Errorf("create model dir %s: %w", localDir, err)
	}

	for _, name := range files {
		localPath := filepath.Join(localDir, name)
		if _, err := os.Stat(localPath); err == nil {
			s.l.Debugf(ctx, "modelstore: %s already present, skipping download", localPath)
			continue
		}

		objectName := path.Join(s.config.Prefix, name)
		s.l.Infof(ctx, "modelstore: downloading s3://%s/%s to %s", s.config.Bucket, objectName, localPath)

		if err := s.client.FGetObject(ctx, s.config.Bucket, objectName, localPath, minio.GetObjectOptions{}); err != nil {
			return fmt.Errorf("download %s from bucket %s: %w", objectName, s.config.Bucket, err)
		}
	}
	return nil
}

// HealthCheck verifies the bucket exists and is reachable.
func (s *modelStoreImpl) HealthCheck(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.config.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.config.Bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.config.Bucket)
	}
	return nil
}
