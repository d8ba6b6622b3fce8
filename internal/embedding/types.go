package embedding

// DefaultInstruction is paired with each text when the request omits one.
const DefaultInstruction = "Represent the document for retrieval: "

// DefaultBatchSize is the encode chunk size when the request omits one.
const DefaultBatchSize = 32

type EmbedInput struct {
	Instruction string
	Texts       []string
	Normalize   bool
	BatchSize   int
}

type EmbedOutput struct {
	Vectors [][]float32
}
