package usecase

import (
	"model-srv/internal/reranking"
	"model-srv/pkg/crossencoder"
	"model-srv/pkg/log"
)

type implUseCase struct {
	ce crossencoder.ICrossEncoder
	l  log.Logger
}

func New(l log.Logger, ce crossencoder.ICrossEncoder) reranking.UseCase {
	return &implUseCase{
		ce: ce,
		l:  l,
	}
}
