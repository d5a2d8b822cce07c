package tween

// RegistryBuilderOption is a functional option for configuring a Registry during construction.
type RegistryBuilderOption func(*registry)

// WithClock sets the clock the registry stamps task start and end times with.
//
// Parameters:
//   - c: the clock to use
//
// Returns:
//   - RegistryBuilderOption: functional option to set the clock
func WithClock(c Clock) RegistryBuilderOption {
	return func(r *registry) {
		r.clock = c
	}
}

// WithCapacity preallocates room for n concurrent tasks.
//
// Parameters:
//   - n: expected number of concurrent tasks
//
// Returns:
//   - RegistryBuilderOption: functional option to size the registry
func WithCapacity(n int) RegistryBuilderOption {
	return func(r *registry) {
		if n <= 0 {
			return
		}
		r.tasks = make(map[taskKey]*Task, n)
		r.order = make([]*Task, 0, n)
	}
}
