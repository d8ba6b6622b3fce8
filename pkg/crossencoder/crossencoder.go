package crossencoder

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"model-srv/pkg/onnx"
)

// NewCrossEncoder loads the tokenizer and model from cfg.ModelDir and creates
// an inference session on the runtime's device. Returns the interface.
func NewCrossEncoder(rt *onnx.Runtime, cfg CrossEncoderConfig) (ICrossEncoder, error) {
	maxSeq := cfg.MaxSequenceLength
	if maxSeq <= 0 {
		maxSeq = DefaultMaxSequenceLength
	}
	onnxCfg := cfg.ONNX
	if len(onnxCfg.InputNames) == 0 {
		onnxCfg = DefaultONNXConfig()
	}

	tk, err := pretrained.FromFile(filepath.Join(cfg.ModelDir, TokenizerFile))
	if err != nil {
		return nil, fmt.Errorf("load tokenizer from %s: %w", cfg.ModelDir, err)
	}
	tk.WithTruncation(&tokenizer.TruncationParams{
		MaxLength: maxSeq,
		Strategy:  tokenizer.LongestFirst,
		Stride:    0,
	})

	session, err := rt.NewSession(filepath.Join(cfg.ModelDir, ModelFile), onnxCfg.InputNames, onnxCfg.OutputNames)
	if err != nil {
		return nil, err
	}

	return &crossEncoderImpl{
		name:    cfg.Name,
		maxSeq:  maxSeq,
		config:  onnxCfg,
		tk:      tk,
		session: session,
	}, nil
}

// Name returns the human-readable model name.
func (ce *crossEncoderImpl) Name() string {
	return ce.name
}

// Score scores all (query, candidate) pairs in one inference pass.
func (ce *crossEncoderImpl) Score(_ context.Context, query string, candidates []string) ([]float64, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ce.mu.Lock()
	defer ce.mu.Unlock()

	pairs := make([]tokenizer.EncodeInput, len(candidates))
	for i, c := range candidates {
		pairs[i] = tokenizer.NewDualEncodeInput(
			tokenizer.NewInputSequence(query),
			tokenizer.NewInputSequence(c),
		)
	}

	encodings, err := ce.tk.EncodeBatch(pairs, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize pairs: %w", err)
	}

	batchSize := len(encodings)
	seqLength := 0
	for _, enc := range encodings {
		if len(enc.Ids) > seqLength {
			seqLength = len(enc.Ids)
		}
	}
	if seqLength > ce.maxSeq {
		seqLength = ce.maxSeq
	}

	inputShape := ort.NewShape(int64(batchSize), int64(seqLength))

	fill := func(pick func(enc tokenizer.Encoding) []int) []int64 {
		data := make([]int64, batchSize*seqLength)
		for b := 0; b < batchSize; b++ {
			src := pick(encodings[b])
			copyLen := len(src)
			if copyLen > seqLength {
				copyLen = seqLength
			}
			for i := 0; i < copyLen; i++ {
				data[b*seqLength+i] = int64(src[i])
			}
		}
		return data
	}

	inputTensors := make([]ort.Value, 0, len(ce.config.InputNames))
	destroyInputs := func() {
		for _, t := range inputTensors {
			t.Destroy()
		}
	}
	for _, name := range ce.config.InputNames {
		var data []int64
		switch name {
		case "input_ids":
			data = fill(func(enc tokenizer.Encoding) []int { return enc.Ids })
		case "attention_mask":
			data = fill(func(enc tokenizer.Encoding) []int { return enc.AttentionMask })
		case "token_type_ids":
			data = fill(func(enc tokenizer.Encoding) []int { return enc.TypeIds })
		default:
			destroyInputs()
			return nil, fmt.Errorf("unsupported input tensor: %s", name)
		}
		tensor, err := ort.NewTensor(inputShape, data)
		if err != nil {
			destroyInputs()
			return nil, fmt.Errorf("create %s tensor: %w", name, err)
		}
		inputTensors = append(inputTensors, tensor)
	}
	defer destroyInputs()

	// The classifier head outputs [batch, 1] logits.
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(int64(batchSize), 1))
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	if err := ce.session.Run(inputTensors, []ort.Value{outputTensor}); err != nil {
		return nil, fmt.Errorf("run cross-encoder inference: %w", err)
	}

	flatOutput := outputTensor.GetData()
	scores := make([]float64, batchSize)
	for i := 0; i < batchSize; i++ {
		scores[i] = sigmoid(float64(flatOutput[i]))
	}
	return scores, nil
}

// Close releases the inference session.
func (ce *crossEncoderImpl) Close() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	if ce.session != nil {
		if err := ce.session.Destroy(); err != nil {
			return fmt.Errorf("destroy session: %w", err)
		}
		ce.session = nil
	}
	return nil
}

// sigmoid maps a logit to the 0..1 range, clamped against overflow.
func sigmoid(x float64) float64 {
	if x > 20 {
		return 1.0
	}
	if x < -20 {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}
