package encoder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"model-srv/pkg/onnx"
)

// NewEncoder loads the tokenizer and model from cfg.ModelDir and creates an
// inference session on the runtime's device. Returns the interface.
func NewEncoder(rt *onnx.Runtime, cfg EncoderConfig) (IEncoder, error) {
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

	return &encoderImpl{
		name:    cfg.Name,
		maxSeq:  maxSeq,
		config:  onnxCfg,
		tk:      tk,
		session: session,
	}, nil
}

// Name returns the human-readable model name.
func (e *encoderImpl) Name() string {
	return e.name
}

// Dimensions returns the embedding vector size.
func (e *encoderImpl) Dimensions() int {
	return e.config.HiddenSize
}

// Encode computes embeddings for the texts in one inference pass.
func (e *encoderImpl) Encode(_ context.Context, texts []string, normalize bool) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	vectors, err := e.computeBatch(texts)
	if err != nil {
		return nil, err
	}
	if normalize {
		for _, v := range vectors {
			l2Normalize(v)
		}
	}
	return vectors, nil
}

// computeBatch tokenizes, runs the session and pools. Must hold the lock.
func (e *encoderImpl) computeBatch(texts []string) ([][]float32, error) {
	inputBatch := make([]tokenizer.EncodeInput, len(texts))
	for i, t := range texts {
		inputBatch[i] = tokenizer.NewSingleEncodeInput(tokenizer.NewInputSequence(t))
	}

	encodings, err := e.tk.EncodeBatch(inputBatch, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	batchSize := len(encodings)
	hiddenSize := e.config.HiddenSize

	// Pad to the longest sequence in the batch, capped at the model limit.
	seqLength := 0
	for _, enc := range encodings {
		if len(enc.Ids) > seqLength {
			seqLength = len(enc.Ids)
		}
	}
	if seqLength > e.maxSeq {
		seqLength = e.maxSeq
	}

	inputTensors, attentionMask, err := buildInputTensors(e.config.InputNames, encodings, batchSize, seqLength)
	if err != nil {
		return nil, err
	}
	defer destroyAll(inputTensors)

	var outputShape ort.Shape
	switch e.config.Pooling {
	case PoolingMean, PoolingCLS:
		outputShape = ort.NewShape(int64(batchSize), int64(seqLength), int64(hiddenSize))
	default:
		outputShape = ort.NewShape(int64(batchSize), int64(hiddenSize))
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	if err := e.session.Run(inputTensors, []ort.Value{outputTensor}); err != nil {
		return nil, fmt.Errorf("run inference: %w", err)
	}

	flatOutput := outputTensor.GetData()

	switch e.config.Pooling {
	case PoolingNone:
		expected := batchSize * hiddenSize
		if len(flatOutput) != expected {
			return nil, fmt.Errorf("unexpected output size: got %d, expected %d", len(flatOutput), expected)
		}
		results := make([][]float32, batchSize)
		for i := 0; i < batchSize; i++ {
			results[i] = make([]float32, hiddenSize)
			copy(results[i], flatOutput[i*hiddenSize:(i+1)*hiddenSize])
		}
		return results, nil
	case PoolingMean:
		return meanPooling(flatOutput, attentionMask, batchSize, seqLength, hiddenSize), nil
	case PoolingCLS:
		return clsPooling(flatOutput, batchSize, seqLength, hiddenSize), nil
	default:
		return nil, fmt.Errorf("unknown pooling strategy: %s", e.config.Pooling)
	}
}

// buildInputTensors creates one tensor per configured input name, padding with
// zeros. Returns the tensors plus the raw attention mask for pooling.
func buildInputTensors(names []string, encodings []tokenizer.Encoding, batchSize, seqLength int) ([]ort.Value, []int64, error) {
	shape := ort.NewShape(int64(batchSize), int64(seqLength))

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

	attentionMask := fill(func(enc tokenizer.Encoding) []int { return enc.AttentionMask })

	tensors := make([]ort.Value, 0, len(names))
	for _, name := range names {
		var data []int64
		switch name {
		case "input_ids":
			data = fill(func(enc tokenizer.Encoding) []int { return enc.Ids })
		case "attention_mask":
			data = attentionMask
		case "token_type_ids":
			data = fill(func(enc tokenizer.Encoding) []int { return enc.TypeIds })
		default:
			destroyAll(tensors)
			return nil, nil, fmt.Errorf("unsupported input tensor: %s", name)
		}

		tensor, err := ort.NewTensor(shape, data)
		if err != nil {
			destroyAll(tensors)
			return nil, nil, fmt.Errorf("create %s tensor: %w", name, err)
		}
		tensors = append(tensors, tensor)
	}

	return tensors, attentionMask, nil
}

func destroyAll(tensors []ort.Value) {
	for _, t := range tensors {
		if t != nil {
			t.Destroy()
		}
	}
}

// Close releases the inference session.
func (e *encoderImpl) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		if err := e.session.Destroy(); err != nil {
			return fmt.Errorf("destroy session: %w", err)
		}
		e.session = nil
	}
	return nil
}
