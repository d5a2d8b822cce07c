package tween

import (
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

type taskKey struct {
	target game_object.GameObject
	group  PropertyGroup
}

type registry struct {
	clock Clock
	tasks map[taskKey]*Task
	order []*Task
}

// Registry holds every in-flight Task, keyed by (node, property group).
//
// Ordering guarantees of Advance:
//   - tasks advance in the order they were scheduled
//   - a task's completion callback fires after its final value write, exactly once
//   - tasks scheduled from inside a callback are first advanced on the next call
//   - tasks canceled from inside a callback are not advanced again and never fire
//
// The registry is not safe for concurrent use; it belongs to the frame loop.
type Registry interface {
	// Now returns the registry clock's current time.
	//
	// Returns:
	//   - time.Duration: elapsed time on the registry clock
	Now() time.Duration

	// Schedule registers a transition of group on target from from to to. Any existing task for the
	// same (target, group) pair is discarded first without firing its callback.
	//
	// Parameters:
	//   - target: the node to animate
	//   - group: the property group to write
	//   - from: start value
	//   - to: end value
	//   - duration: interpolation length
	//   - delay: wait before interpolation starts; the start value is written while waiting
	//   - onComplete: optional callback fired once after the final write
	Schedule(target game_object.GameObject, group PropertyGroup, from, to common.Vec3, duration, delay time.Duration, onComplete func())

	// Hold registers a GroupHold task that only fires onComplete once duration has elapsed.
	//
	// Parameters:
	//   - target: the node the hold belongs to
	//   - duration: time until the callback fires
	//   - onComplete: callback fired at the deadline
	Hold(target game_object.GameObject, duration time.Duration, onComplete func())

	// Cancel removes the target's tasks for the given groups, or for every group when none are
	// given. Callbacks of removed tasks never fire and the last written values are kept.
	//
	// Parameters:
	//   - target: the node whose tasks are removed
	//   - groups: optional property groups to restrict the removal to
	Cancel(target game_object.GameObject, groups ...PropertyGroup)

	// Advance interpolates every task at now and retires those that have completed.
	//
	// Parameters:
	//   - now: the current time on the registry clock
	Advance(now time.Duration)

	// Active reports whether a task exists for the (target, group) pair.
	//
	// Parameters:
	//   - target: the node to check
	//   - group: the property group to check
	//
	// Returns:
	//   - bool: true if a task is registered
	Active(target game_object.GameObject, group PropertyGroup) bool

	// Task returns a copy of the registered task for the pair, if any.
	//
	// Returns:
	//   - Task: the task copy
	//   - bool: false if no task is registered
	Task(target game_object.GameObject, group PropertyGroup) (Task, bool)

	// Len returns the number of registered tasks.
	//
	// Returns:
	//   - int: task count
	Len() int

	// Clear drops every task without firing callbacks.
	Clear()
}

var _ Registry = &registry{}

// NewRegistry creates an empty Registry.
// Defaults to the system monotonic clock.
//
// Parameters:
//   - options: variadic list of RegistryBuilderOption functions
//
// Returns:
//   - Registry: the new registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registry{
		tasks: make(map[taskKey]*Task),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.clock == nil {
		r.clock = NewSystemClock()
	}
	return r
}

func (r *registry) Now() time.Duration {
	return r.clock.Now()
}

func (r *registry) Schedule(target game_object.GameObject, group PropertyGroup, from, to common.Vec3, duration, delay time.Duration, onComplete func()) {
	if target == nil {
		return
	}
	r.remove(taskKey{target: target, group: group})

	start := r.clock.Now() + delay
	t := &Task{
		Target:     target,
		Group:      group,
		From:       from,
		To:         to,
		Start:      start,
		End:        start + duration,
		OnComplete: onComplete,
	}
	r.tasks[taskKey{target: target, group: group}] = t
	r.order = append(r.order, t)
}

func (r *registry) Hold(target game_object.GameObject, duration time.Duration, onComplete func()) {
	r.Schedule(target, GroupHold, common.Vec3{}, common.Vec3{}, duration, 0, onComplete)
}

func (r *registry) Cancel(target game_object.GameObject, groups ...PropertyGroup) {
	if len(groups) == 0 {
		groups = AllGroups
	}
	for _, g := range groups {
		r.remove(taskKey{target: target, group: g})
	}
}

func (r *registry) Advance(now time.Duration) {
	if len(r.order) == 0 {
		return
	}

	snapshot := make([]*Task, len(r.order))
	copy(snapshot, r.order)

	for _, t := range snapshot {
		if t.removed {
			continue
		}
		raw := t.fraction(now)
		t.apply(common.EaseInOutQuint(raw))
		if raw < 1 {
			continue
		}
		r.remove(taskKey{target: t.Target, group: t.Group})
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

func (r *registry) Active(target game_object.GameObject, group PropertyGroup) bool {
	_, ok := r.tasks[taskKey{target: target, group: group}]
	return ok
}

func (r *registry) Task(target game_object.GameObject, group PropertyGroup) (Task, bool) {
	t, ok := r.tasks[taskKey{target: target, group: group}]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

func (r *registry) Len() int {
	return len(r.tasks)
}

func (r *registry) Clear() {
	for _, t := range r.order {
		t.removed = true
	}
	r.tasks = make(map[taskKey]*Task)
	r.order = nil
}

// remove drops the task for key, if any, and marks it so an in-progress Advance skips it.
func (r *registry) remove(key taskKey) {
	t, ok := r.tasks[key]
	if !ok {
		return
	}
	t.removed = true
	delete(r.tasks, key)
	for i, o := range r.order {
		if o == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
