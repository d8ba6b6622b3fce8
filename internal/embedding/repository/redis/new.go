package redis

import (
	"model-srv/internal/embedding/repository"
	"model-srv/pkg/log"
	pkgRedis "model-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
