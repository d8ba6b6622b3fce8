package usecase

import (
	"model-srv/internal/embedding"
	"model-srv/internal/embedding/repository"
	"model-srv/pkg/encoder"
	"model-srv/pkg/log"
)

type implUseCase struct {
	enc  encoder.IEncoder
	repo repository.Repository // nil when the cache is disabled
	l    log.Logger
}

func New(l log.Logger, enc encoder.IEncoder, repo repository.Repository) embedding.UseCase {
	return &implUseCase{
		enc:  enc,
		repo: repo,
		l:    l,
	}
}
