package onnx

import (
	"fmt"
	"strconv"

	ort "github.com/yalue/onnxruntime_go"
)

// Init loads the onnxruntime library, initializes the environment and selects
// the compute device once for the lifetime of the process.
func Init(cfg Config) (*Runtime, error) {
	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize ONNX runtime: %w", err)
		}
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}

	device, err := selectDevice(opts, cfg)
	if err != nil {
		_ = opts.Destroy()
		return nil, err
	}

	return &Runtime{device: device, opts: opts}, nil
}

// selectDevice resolves the requested device against what the runtime can
// actually provide. auto degrades to CPU; an explicit cuda request fails hard.
func selectDevice(opts *ort.SessionOptions, cfg Config) (Device, error) {
	switch Device(cfg.Device) {
	case DeviceCPU, "":
		return DeviceCPU, nil
	case DeviceCUDA, DeviceAuto:
	default:
		return "", ErrInvalidDevice
	}

	cudaOpts, err := ort.NewCUDAProviderOptions()
	if err != nil {
		if Device(cfg.Device) == DeviceCUDA {
			return "", fmt.Errorf("%w: %v", ErrCUDAUnavailable, err)
		}
		return DeviceCPU, nil
	}
	defer cudaOpts.Destroy()

	if err := cudaOpts.Update(map[string]string{
		"device_id": strconv.Itoa(cfg.DeviceID),
	}); err != nil {
		if Device(cfg.Device) == DeviceCUDA {
			return "", fmt.Errorf("%w: %v", ErrCUDAUnavailable, err)
		}
		return DeviceCPU, nil
	}

	if err := opts.AppendExecutionProviderCUDA(cudaOpts); err != nil {
		if Device(cfg.Device) == DeviceCUDA {
			return "", fmt.Errorf("%w: %v", ErrCUDAUnavailable, err)
		}
		return DeviceCPU, nil
	}

	return DeviceCUDA, nil
}

// Device returns the selected compute device.
func (r *Runtime) Device() Device {
	return r.device
}

// NewSession creates an inference session for the model at path, bound to the
// runtime's execution provider.
func (r *Runtime) NewSession(modelPath string, inputNames, outputNames []string) (*ort.DynamicAdvancedSession, error) {
	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, outputNames, r.opts)
	if err != nil {
		return nil, fmt.Errorf("create ONNX session for %s: %w", modelPath, err)
	}
	return session, nil
}

// Destroy releases the session options and the ONNX environment.
func (r *Runtime) Destroy() error {
	var firstErr error
	if r.opts != nil {
		if err := r.opts.Destroy(); err != nil {
			firstErr = fmt.Errorf("destroy session options: %w", err)
		}
		r.opts = nil
	}
	if err := ort.DestroyEnvironment(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("destroy environment: %w", err)
	}
	return firstErr
}
