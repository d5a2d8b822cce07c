package loader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/dustin/go-humanize"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

// ErrNoItems is returned when no catalog entry produced a usable item.
var ErrNoItems = errors.New("no loadable items")

// DefaultTargetSize is the length a model's longest axis is normalized to.
const DefaultTargetSize float32 = 1.4

// ModelInfo is what the loader learns about one model file.
type ModelInfo struct {
	Path   string
	Bytes  int64
	Bounds Bounds

	// Offset and Scale fit the model into DefaultTargetSize (or the loader's target) centered on
	// the node origin.
	Offset common.Vec3
	Scale  float32
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	workers    int
	targetSize float32
	pool       worker.DynamicWorkerPool

	modelCache map[string]ModelInfo
}

// Loader reads the model catalog and turns it into carousel items.
type Loader interface {
	// LoadCatalog reads and decodes a catalog file.
	//
	// Parameters:
	//   - path: location of models.json
	//
	// Returns:
	//   - []CatalogEntry: the entries in file order
	//   - error: error if the catalog is unreadable, malformed or empty
	LoadCatalog(path string) ([]CatalogEntry, error)

	// LoadModel measures a model file and caches the result by path.
	// If the model is already cached, the cached version is returned.
	//
	// Parameters:
	//   - path: the .glb or .gltf file
	//
	// Returns:
	//   - ModelInfo: bounds and normalization transform
	//   - error: error if the file cannot be read or carries no geometry
	LoadModel(path string) (ModelInfo, error)

	// LoadItems loads every entry's model on the worker pool and builds one item per success.
	// Failed entries are logged and left out; the remaining items keep catalog order.
	//
	// Parameters:
	//   - entries: the catalog entries
	//
	// Returns:
	//   - []*carousel.Item: items ready for carousel.WithItems
	//   - error: ErrNoItems if every entry failed
	LoadItems(entries []CatalogEntry) ([]*carousel.Item, error)

	// Get retrieves a cached model by path.
	//
	// Parameters:
	//   - path: the cache key to look up
	//
	// Returns:
	//   - ModelInfo: the cached model
	//   - bool: whether it was found
	Get(path string) (ModelInfo, bool)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the given options applied.
// Defaults to 4 workers and DefaultTargetSize.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the configured loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		workers:    4,
		targetSize: DefaultTargetSize,
		modelCache: make(map[string]ModelInfo),
	}

	for _, option := range options {
		option(l)
	}

	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

func (l *loader) LoadCatalog(path string) ([]CatalogEntry, error) {
	entries, err := ReadCatalog(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[Loader] catalog %s: %d entries", path, len(entries))
	return entries, nil
}

func (l *loader) LoadModel(path string) (ModelInfo, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	if err := checkFormat(path); err != nil {
		return ModelInfo{}, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	p := newGLTFParser()
	if err := p.Parse(path); err != nil {
		return ModelInfo{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	bounds, err := p.Bounds()
	if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to measure %s: %w", path, err)
	}

	offset, scale := bounds.Normalization(l.targetSize)
	info := ModelInfo{
		Path:   path,
		Bytes:  stat.Size(),
		Bounds: bounds,
		Offset: offset,
		Scale:  scale,
	}

	l.mu.Lock()
	l.modelCache[path] = info
	l.mu.Unlock()

	return info, nil
}

func (l *loader) LoadItems(entries []CatalogEntry) ([]*carousel.Item, error) {
	type result struct {
		info ModelInfo
		err  error
	}
	results := make([]result, len(entries))

	// The pool's own Wait blocks until workers idle out, so completion is tracked here.
	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		idx := i
		url := entry.URL
		l.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				if url == "" {
					results[idx].err = errors.New("entry has no url")
					return nil, results[idx].err
				}
				info, err := l.LoadModel(url)
				results[idx] = result{info: info, err: err}
				return info, err
			},
		})
	}
	wg.Wait()

	items := make([]*carousel.Item, 0, len(entries))
	var total int64
	for i, entry := range entries {
		if err := results[i].err; err != nil {
			log.Printf("[Loader] skipping %q: %v", entry.ID, err)
			continue
		}
		info := results[i].info
		total += info.Bytes

		meta := entry.Metadata()
		node := game_object.NewGameObject(
			game_object.WithID(uint64(len(items))),
			game_object.WithName(meta.DisplayLabel()),
			game_object.WithModel(info.Path, info.Offset, info.Scale),
		)
		item := carousel.NewItem(len(items), node, meta)
		// the catalog hint multiplies the node scale; the fitted model size stays the same for every entry
		item.BaseScale = entry.BaseScale()
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}
	log.Printf("[Loader] loaded %d/%d models (%s)", len(items), len(entries), humanize.Bytes(uint64(total)))
	return items, nil
}

func (l *loader) Get(path string) (ModelInfo, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	info, ok := l.modelCache[path]
	return info, ok
}

// checkFormat rejects files the glTF parser cannot read.
func checkFormat(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return nil
	default:
		return fmt.Errorf("unsupported model format: %q", ext)
	}
}
