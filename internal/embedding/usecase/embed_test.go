package usecase

import (
	"context"
	"errors"
	"testing"

	"model-srv/internal/embedding"
	"model-srv/internal/embedding/repository"
	"model-srv/pkg/log"
)

// fakeEncoder returns one vector per text and records every batch it sees.
type fakeEncoder struct {
	batches [][]string
	err     error
}

func (f *fakeEncoder) Encode(_ context.Context, texts []string, _ bool) ([][]float32, error) {
	f.batches = append(f.batches, texts)
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), float32(i)}
	}
	return vectors, nil
}

func (f *fakeEncoder) Dimensions() int { return 2 }
func (f *fakeEncoder) Name() string    { return "fake-encoder" }
func (f *fakeEncoder) Close() error    { return nil }

// shortEncoder drops one vector to simulate a broken model export.
type shortEncoder struct{}

func (shortEncoder) Encode(_ context.Context, texts []string, _ bool) ([][]float32, error) {
	return make([][]float32, len(texts)-1), nil
}
func (shortEncoder) Dimensions() int { return 2 }
func (shortEncoder) Name() string    { return "short-encoder" }
func (shortEncoder) Close() error    { return nil }

// fakeRepo is an in-memory vector cache.
type fakeRepo struct {
	store   map[string][]float32
	saveErr error
	gets    int
	saves   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: map[string][]float32{}}
}

func (f *fakeRepo) Get(_ context.Context, opt repository.GetOptions) ([]float32, error) {
	f.gets++
	return f.store[opt.Key], nil
}

func (f *fakeRepo) Save(_ context.Context, opt repository.SaveOptions) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.store[opt.Key] = opt.Vector
	return nil
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal"})
}

func TestEmbed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty texts", func(t *testing.T) {
		uc := New(testLogger(), &fakeEncoder{}, nil)
		_, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: embedding.DefaultInstruction,
			BatchSize:   embedding.DefaultBatchSize,
		})
		if !errors.Is(err, embedding.ErrEmptyTexts) {
			t.Errorf("error mismatch: got %v, want %v", err, embedding.ErrEmptyTexts)
		}
	})

	t.Run("invalid batch size", func(t *testing.T) {
		uc := New(testLogger(), &fakeEncoder{}, nil)
		_, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: embedding.DefaultInstruction,
			Texts:       []string{"a"},
			BatchSize:   0,
		})
		if !errors.Is(err, embedding.ErrInvalidBatchSize) {
			t.Errorf("error mismatch: got %v, want %v", err, embedding.ErrInvalidBatchSize)
		}
	})

	t.Run("one vector per text in input order", func(t *testing.T) {
		enc := &fakeEncoder{}
		uc := New(testLogger(), enc, nil)
		out, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "prefix: ",
			Texts:       []string{"a", "bb", "ccc"},
			Normalize:   true,
			BatchSize:   embedding.DefaultBatchSize,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Vectors) != 3 {
			t.Fatalf("vector count mismatch: got %d, want 3", len(out.Vectors))
		}
		// First component encodes the paired text length, so order is visible.
		wantLens := []float32{9, 10, 11}
		for i, v := range out.Vectors {
			if v[0] != wantLens[i] {
				t.Errorf("vector %d mismatch: got %v, want first component %v", i, v, wantLens[i])
			}
		}
	})

	t.Run("instruction is paired before encoding", func(t *testing.T) {
		enc := &fakeEncoder{}
		uc := New(testLogger(), enc, nil)
		_, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "Represent: ",
			Texts:       []string{"hello"},
			BatchSize:   embedding.DefaultBatchSize,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(enc.batches) != 1 || len(enc.batches[0]) != 1 {
			t.Fatalf("batch shape mismatch: got %v", enc.batches)
		}
		if got, want := enc.batches[0][0], "Represent: hello"; got != want {
			t.Errorf("paired text mismatch: got %q, want %q", got, want)
		}
	})

	t.Run("batch size controls chunking", func(t *testing.T) {
		enc := &fakeEncoder{}
		uc := New(testLogger(), enc, nil)
		out, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a", "b", "c", "d", "e"},
			BatchSize:   2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Vectors) != 5 {
			t.Errorf("vector count mismatch: got %d, want 5", len(out.Vectors))
		}
		wantChunks := []int{2, 2, 1}
		if len(enc.batches) != len(wantChunks) {
			t.Fatalf("chunk count mismatch: got %d, want %d", len(enc.batches), len(wantChunks))
		}
		for i, b := range enc.batches {
			if len(b) != wantChunks[i] {
				t.Errorf("chunk %d size mismatch: got %d, want %d", i, len(b), wantChunks[i])
			}
		}
	})

	t.Run("encode error propagates", func(t *testing.T) {
		encodeErr := errors.New("session failed")
		uc := New(testLogger(), &fakeEncoder{err: encodeErr}, nil)
		_, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a"},
			BatchSize:   embedding.DefaultBatchSize,
		})
		if !errors.Is(err, encodeErr) {
			t.Errorf("error mismatch: got %v, want %v", err, encodeErr)
		}
	})

	t.Run("mismatch vector count", func(t *testing.T) {
		uc := New(testLogger(), shortEncoder{}, nil)
		_, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a", "b"},
			BatchSize:   embedding.DefaultBatchSize,
		})
		if !errors.Is(err, embedding.ErrMismatchVectorCount) {
			t.Errorf("error mismatch: got %v, want %v", err, embedding.ErrMismatchVectorCount)
		}
	})

	t.Run("cache hit skips encoding", func(t *testing.T) {
		enc := &fakeEncoder{}
		repo := newFakeRepo()
		uc := New(testLogger(), enc, repo)

		input := embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a", "b"},
			Normalize:   true,
			BatchSize:   embedding.DefaultBatchSize,
		}

		first, err := uc.Embed(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 2 {
			t.Errorf("save count mismatch: got %d, want 2", repo.saves)
		}

		second, err := uc.Embed(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(enc.batches) != 1 {
			t.Errorf("encode call count mismatch: got %d, want 1", len(enc.batches))
		}
		for i := range first.Vectors {
			if first.Vectors[i][0] != second.Vectors[i][0] {
				t.Errorf("cached vector %d mismatch: got %v, want %v", i, second.Vectors[i], first.Vectors[i])
			}
		}
	})

	t.Run("normalize flag changes cache key", func(t *testing.T) {
		enc := &fakeEncoder{}
		repo := newFakeRepo()
		uc := New(testLogger(), enc, repo)

		input := embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a"},
			Normalize:   true,
			BatchSize:   embedding.DefaultBatchSize,
		}
		if _, err := uc.Embed(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input.Normalize = false
		if _, err := uc.Embed(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(enc.batches) != 2 {
			t.Errorf("encode call count mismatch: got %d, want 2", len(enc.batches))
		}
	})

	t.Run("cache save failure does not fail request", func(t *testing.T) {
		repo := newFakeRepo()
		repo.saveErr = errors.New("redis down")
		uc := New(testLogger(), &fakeEncoder{}, repo)

		out, err := uc.Embed(ctx, embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a"},
			BatchSize:   embedding.DefaultBatchSize,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Vectors) != 1 {
			t.Errorf("vector count mismatch: got %d, want 1", len(out.Vectors))
		}
	})

	t.Run("nil repository disables cache", func(t *testing.T) {
		enc := &fakeEncoder{}
		uc := New(testLogger(), enc, nil)
		input := embedding.EmbedInput{
			Instruction: "i: ",
			Texts:       []string{"a"},
			BatchSize:   embedding.DefaultBatchSize,
		}
		if _, err := uc.Embed(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Embed(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(enc.batches) != 2 {
			t.Errorf("encode call count mismatch: got %d, want 2", len(enc.batches))
		}
	})
}
