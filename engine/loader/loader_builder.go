package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets how many models load concurrently.
//
// Parameters:
//   - n: worker count, values below 1 are ignored
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithTargetSize sets the length every model's longest axis is normalized to.
//
// Parameters:
//   - size: the target length, values <= 0 are ignored
//
// Returns:
//   - LoaderBuilderOption: a function that applies the target size to a loader
func WithTargetSize(size float32) LoaderBuilderOption {
	return func(l *loader) {
		if size > 0 {
			l.targetSize = size
		}
	}
}

// WithModel is an option builder that pre-populates the model cache.
//
// Parameters:
//   - path: the cache key for the model
//   - info: the model to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model option to a loader
func WithModel(path string, info ModelInfo) LoaderBuilderOption {
	return func(l *loader) {
		l.modelCache[path] = info
	}
}
