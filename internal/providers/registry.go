package providers

import (
	"context"
	"sync"
)

// Factory builds the translator for one direction. Construction may be
// expensive (model warm-up), so the registry calls it at most once per
// direction.
type Factory func(direction Direction) (Translator, error)

// Registry owns the loaded translators, one per direction. Loading is lazy
// and check-lock-check guarded per direction: the first request for a
// direction builds its translator, concurrent first requests for the same
// direction share the single load, and loading one direction never blocks
// the other. A failed load is not cached so a later request can retry.
// Loaded translators are shared read-only state for the process lifetime.
type Registry struct {
	factory Factory

	mu     sync.RWMutex
	loaded map[Direction]Translator
	loadMu map[Direction]*sync.Mutex
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory: factory,
		loaded:  make(map[Direction]Translator),
		loadMu: map[Direction]*sync.Mutex{
			DirectionEn2Vi: {},
			DirectionVi2En: {},
		},
	}
}

// Translate resolves the direction for the pair, loads the translator if
// needed, and runs the translation. No registry lock is held across the
// model call itself.
func (r *Registry) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	direction, err := ParseDirection(sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	translator, err := r.translator(direction)
	if err != nil {
		return "", err
	}

	return translator.Translate(ctx, text)
}

func (r *Registry) translator(direction Direction) (Translator, error) {
	r.mu.RLock()
	t, ok := r.loaded[direction]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	load := r.loadMu[direction]
	load.Lock()
	defer load.Unlock()

	r.mu.RLock()
	t, ok = r.loaded[direction]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := r.factory(direction)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.loaded[direction] = t
	r.mu.Unlock()
	return t, nil
}
