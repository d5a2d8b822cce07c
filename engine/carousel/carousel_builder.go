package carousel

import "github.com/Carmen-Shannon/oxy-carousel/engine/tween"

// CarouselBuilderOption is a functional option for configuring a Carousel during construction.
type CarouselBuilderOption func(*carousel)

// WithItems sets the items in display order. Nil items and items without a node are skipped and
// the remaining items are re-indexed so indices stay contiguous.
//
// Parameters:
//   - items: the carousel items
//
// Returns:
//   - CarouselBuilderOption: functional option to set the items
func WithItems(items ...*Item) CarouselBuilderOption {
	return func(c *carousel) {
		c.items = c.items[:0]
		for _, it := range items {
			if it == nil || it.Node == nil {
				continue
			}
			it.Index = len(c.items)
			c.items = append(c.items, it)
		}
	}
}

// WithTuning overrides the carousel constants.
//
// Parameters:
//   - t: the tuning to use
//
// Returns:
//   - CarouselBuilderOption: functional option to set the tuning
func WithTuning(t Tuning) CarouselBuilderOption {
	return func(c *carousel) {
		c.tuning = t
	}
}

// WithTweens sets the registry transitions are scheduled on. The owner of the registry is
// responsible for advancing and clearing it if it is shared.
//
// Parameters:
//   - r: the tween registry
//
// Returns:
//   - CarouselBuilderOption: functional option to set the registry
func WithTweens(r tween.Registry) CarouselBuilderOption {
	return func(c *carousel) {
		c.tweens = r
	}
}

// WithSelectionListener registers a callback invoked after every layout pass.
//
// Parameters:
//   - fn: the listener
//
// Returns:
//   - CarouselBuilderOption: functional option to set the listener
func WithSelectionListener(fn SelectionListener) CarouselBuilderOption {
	return func(c *carousel) {
		c.onSelect = fn
	}
}

// WithInitialIndex sets the index selected by the first layout.
//
// Parameters:
//   - index: the initial selection
//
// Returns:
//   - CarouselBuilderOption: functional option to set the initial selection
func WithInitialIndex(index int) CarouselBuilderOption {
	return func(c *carousel) {
		c.selected = index
	}
}

// WithViewport sets the viewport the first layout is resolved for.
//
// Parameters:
//   - vp: the viewport
//
// Returns:
//   - CarouselBuilderOption: functional option to set the viewport
func WithViewport(vp Viewport) CarouselBuilderOption {
	return func(c *carousel) {
		c.viewport = vp
	}
}
