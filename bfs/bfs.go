package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/floodflow/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from startID along outgoing arcs,
// in arc insertion order, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors queues every unseen head of an admissible outgoing arc.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	arcs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range arcs {
		if e.Capacity < w.opts.MinCapacity || w.visited[e.To] {
			continue
		}
		w.enqueue(e.To, next, item.id)
	}

	return nil
}
