package ecs

// World is the top-level entity container. It owns the ID counter, the
// per-entity kind table, the component registry, and a deferred destruction
// queue flushed at the end of each frame.
//
// All access happens on the simulation goroutine; deferred destruction stands
// in for locking so systems can iterate stores without invalidation.
type World struct {
	nextID       EntityID
	kinds        map[EntityID]Kind
	registry     *Registry
	destroyQueue []EntityID
	queued       map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		nextID:       1,
		kinds:        make(map[EntityID]Kind, 512),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
		queued:       make(map[EntityID]struct{}, 64),
	}
}

func (w *World) Registry() *Registry { return w.registry }

// Create allocates a fresh entity of the given kind. IDs increase
// monotonically and are never reused within a run.
func (w *World) Create(kind Kind) EntityID {
	id := w.nextID
	w.nextID++
	w.kinds[id] = kind
	return id
}

// Alive reports whether the entity exists and has not been destroyed.
// Unknown and destroyed IDs both answer false — never undefined behavior.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.kinds[id]
	return ok
}

// KindOf returns the entity's kind, or (KindNone, false) for unknown or
// destroyed IDs.
func (w *World) KindOf(id EntityID) (Kind, bool) {
	k, ok := w.kinds[id]
	return k, ok
}

// Resolve reports whether a weak reference still points at a live entity of
// the expected kind.
func (w *World) Resolve(ref Ref) bool {
	k, ok := w.kinds[ref.ID]
	return ok && k == ref.Kind
}

// MarkForDestruction queues an entity for the end-of-frame sweep. Marking the
// same entity more than once in a frame is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	if _, ok := w.kinds[id]; !ok {
		return
	}
	if _, dup := w.queued[id]; dup {
		return
	}
	w.queued[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// Doomed reports whether the entity is already queued for destruction this
// frame. Systems use it to treat dying entities as absent without racing the
// sweep.
func (w *World) Doomed(id EntityID) bool {
	_, ok := w.queued[id]
	return ok
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// Called once per frame by the cleanup system.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		w.registry.RemoveAll(id)
		delete(w.kinds, id)
		delete(w.queued, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, k := range w.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// DestroyAll marks every live entity for destruction and flushes immediately.
// Run teardown uses this so a finished run leaks nothing; the ID counter is
// left alone so stale IDs from the old run can never resolve again.
func (w *World) DestroyAll() {
	for id := range w.kinds {
		w.MarkForDestruction(id)
	}
	w.FlushDestroyQueue()
}
