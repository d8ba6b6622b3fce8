package crossencoder

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

	// DefaultMaxSequenceLength caps the combined query+candidate token length.
	DefaultMaxSequenceLength = 512
)

// ONNXConfig describes the tensor layout of the exported cross-encoder.
type ONNXConfig struct {
	InputNames  []string
	OutputNames []string
}

// CrossEncoderConfig is the configuration for the scoring model.
type CrossEncoderConfig struct {
	// ModelDir is the local directory holding ModelFile and TokenizerFile.
	ModelDir string
	// Name is the human-readable model name, e.g. "BAAI/bge-reranker-large".
	Name string
	// MaxSequenceLength caps tokenized pairs; 0 means DefaultMaxSequenceLength.
	MaxSequenceLength int
	// ONNX tensor layout; zero value means DefaultONNXConfig.
	ONNX ONNXConfig
}

// DefaultONNXConfig matches the bge-reranker-large export: an XLM-RoBERTa
// classifier that takes input_ids and attention_mask and outputs one logit.
func DefaultONNXConfig() ONNXConfig {
	return ONNXConfig{
		InputNames:  []string{"input_ids", "attention_mask"},
		OutputNames: []string{"logits"},
	}
}

// crossEncoderImpl implements ICrossEncoder over an ONNX session.
type crossEncoderImpl struct {
	name    string
	maxSeq  int
	config  ONNXConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}
