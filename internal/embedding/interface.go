package embedding

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Embed(ctx context.Context, input EmbedInput) (EmbedOutput, error)
}
