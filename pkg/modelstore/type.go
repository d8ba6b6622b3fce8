package modelstore

import (
	"errors"

	"github.com/minio/minio-go/v7"

	"model-srv/pkg/log"
)

var (
	ErrEndpointRequired = errors.New("modelstore: endpoint is required")
	ErrBucketRequired   = errors.New("modelstore: bucket is required")
)

// ModelStoreConfig holds object storage configuration for model artifacts.
type ModelStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	// Prefix is the object key prefix the model's files live under,
	// e.g. "models/hkunlp__instructor-xl/".
	Prefix string
}

// modelStoreImpl implements IModelStore using minio-go.
type modelStoreImpl struct {
	l      log.Logger
	client *minio.Client
	config ModelStoreConfig
}
