package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"

	"model-srv/internal/embedding"
	"model-srv/internal/embedding/repository"
)

func (uc *implUseCase) Embed(ctx context.Context, input embedding.EmbedInput) (embedding.EmbedOutput, error) {
	if len(input.Texts) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Embed: empty texts")
		return embedding.EmbedOutput{}, embedding.ErrEmptyTexts
	}
	if input.BatchSize < 1 {
		uc.l.Errorf(ctx, "embedding.usecase.Embed: invalid batch size %d", input.BatchSize)
		return embedding.EmbedOutput{}, embedding.ErrInvalidBatchSize
	}

	// Pair each text with the instruction before tokenization.
	paired := make([]string, len(input.Texts))
	for i, t := range input.Texts {
		paired[i] = input.Instruction + t
	}

	results := make([][]float32, len(input.Texts))
	missIndices := make([]int, 0, len(input.Texts))

	// 1. Check cache. Cache errors degrade to inference, never fail the request.
	keys := make([]string, len(input.Texts))
	for i, t := range input.Texts {
		keys[i] = cacheKey(input.Instruction, t, input.Normalize)
		if uc.repo == nil {
			missIndices = append(missIndices, i)
			continue
		}
		cached, err := uc.repo.Get(ctx, repository.GetOptions{Key: keys[i]})
		if err == nil && cached != nil {
			results[i] = cached
			continue
		}
		missIndices = append(missIndices, i)
	}

	if len(missIndices) == 0 {
		uc.l.Debugf(ctx, "embedding.usecase.Embed: all %d texts served from cache", len(input.Texts))
		return embedding.EmbedOutput{Vectors: results}, nil
	}

	// 2. Encode misses chunk by chunk. BatchSize controls chunking only; the
	// output always has one vector per input text.
	for start := 0; start < len(missIndices); start += input.BatchSize {
		end := start + input.BatchSize
		if end > len(missIndices) {
			end = len(missIndices)
		}
		chunkIdx := missIndices[start:end]

		chunk := make([]string, len(chunkIdx))
		for i, idx := range chunkIdx {
			chunk[i] = paired[idx]
		}

		vectors, err := uc.enc.Encode(ctx, chunk, input.Normalize)
		if err != nil {
			uc.l.Errorf(ctx, "embedding.usecase.Embed: encode failed: %v", err)
			return embedding.EmbedOutput{}, err
		}
		if len(vectors) != len(chunk) {
			uc.l.Errorf(ctx, "embedding.usecase.Embed: mismatch vector count: got %d, want %d", len(vectors), len(chunk))
			return embedding.EmbedOutput{}, embedding.ErrMismatchVectorCount
		}

		// 3. Fill results and backfill the cache best-effort.
		for i, idx := range chunkIdx {
			results[idx] = vectors[i]
			if uc.repo != nil {
				if err := uc.repo.Save(ctx, repository.SaveOptions{Key: keys[idx], Vector: vectors[i]}); err != nil {
					uc.l.Warnf(ctx, "embedding.usecase.Embed: cache save failed: %v", err)
				}
			}
		}
	}

	return embedding.EmbedOutput{Vectors: results}, nil
}

// cacheKey hashes everything that determines the vector: instruction, text and
// the normalize flag.
func cacheKey(instruction, text string, normalize bool) string {
	h := sha256.New()
	h.Write([]byte(instruction))
	h.Write([]byte{0})
	h.Write([]byte(text))
	if normalize {
		h.Write([]byte{1})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
