package encoder

import (
	"sync"

	"github.com/sugarme/tokenizer"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	// ModelFile is the ONNX graph file name inside the model directory.
	ModelFile = "model.onnx"
	// TokenizerFile is the tokenizer file name inside the model directory.
	TokenizerFile = "tokenizer.json"

	// DefaultMaxSequenceLength caps the token sequence length per text.
	DefaultMaxSequenceLength = 512
	// DefaultHiddenSize is the hidden size of instructor-xl.
	DefaultHiddenSize = 768
)

// PoolingStrategy defines how token states become a sentence vector.
type PoolingStrategy string

const (
	// PoolingNone means the model outputs sentence embeddings directly.
	PoolingNone PoolingStrategy = "none"
	// PoolingMean averages token states weighted by the attention mask.
	PoolingMean PoolingStrategy = "mean"
	// PoolingCLS uses the first token's state.
	PoolingCLS PoolingStrategy = "cls"
)

// ONNXConfig describes the tensor layout of the exported model, so the same
// engine serves T5-family exports (no token_type_ids) and BERT-family ones.
type ONNXConfig struct {
	InputNames  []string
	OutputNames []string
	Pooling     PoolingStrategy
	HiddenSize  int
}

// EncoderConfig is the configuration for the embedding model.
type EncoderConfig struct {
	// ModelDir is the local directory holding ModelFile and TokenizerFile.
	ModelDir string
	// Name is the human-readable model name, e.g. "hkunlp/instructor-xl".
	Name string
	// MaxSequenceLength caps tokenized inputs; 0 means DefaultMaxSequenceLength.
	MaxSequenceLength int
	// ONNX tensor layout; zero value means DefaultONNXConfig.
	ONNX ONNXConfig
}

// DefaultONNXConfig matches the instructor-xl export: a T5 encoder that takes
// input_ids and attention_mask and outputs token states for mean pooling.
func DefaultONNXConfig() ONNXConfig {
	return ONNXConfig{
		InputNames:  []string{"input_ids", "attention_mask"},
		OutputNames: []string{"last_hidden_state"},
		Pooling:     PoolingMean,
		HiddenSize:  DefaultHiddenSize,
	}
}

// encoderImpl implements IEncoder over an ONNX session.
type encoderImpl struct {
	name    string
	maxSeq  int
	config  ONNXConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}
