package onnx

import (
	"errors"

	ort "github.com/yalue/onnxruntime_go"
)

// Device is the compute device the runtime ended up on.
type Device string

const (
	DeviceAuto Device = "auto"
	DeviceCUDA Device = "cuda"
	DeviceCPU  Device = "cpu"
)

var (
	ErrCUDAUnavailable = errors.New("onnx: CUDA execution provider is not available")
	ErrInvalidDevice   = errors.New("onnx: device must be auto, cuda or cpu")
)

// Config is the configuration for the ONNX runtime.
type Config struct {
	// LibraryPath points at the onnxruntime shared library. Empty means the
	// platform default search path.
	LibraryPath string
	// Device requests auto, cuda or cpu. auto probes CUDA and falls back to CPU.
	Device string
	// DeviceID selects the GPU when running on CUDA.
	DeviceID int
}

// Runtime owns the process-wide ONNX environment and the session options all
// model sessions are created with. The device is fixed at Init and immutable.
type Runtime struct {
	device Device
	opts   *ort.SessionOptions
}
