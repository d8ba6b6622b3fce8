package modelstore

import (
	"context"
	"fmt"
	"sync"

	"model-srv/config"
	"model-srv/pkg/log"
	"model-srv/pkg/modelstore"
)

var (
	instance modelstore.IModelStore
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the model store client using singleton pattern.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig) (modelstore.IModelStore, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		store, e := modelstore.NewModelStore(l, modelstore.ModelStoreConfig{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
			Prefix:    cfg.Prefix,
		})
		if e != nil {
			err = fmt.Errorf("failed to create model store client: %w", e)
			initErr = err
			return
		}
		if e := store.HealthCheck(ctx); e != nil {
			err = fmt.Errorf("failed to reach model store: %w", e)
			initErr = err
			return
		}
		instance = store
	})

	return instance, err
}
