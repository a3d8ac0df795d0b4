package blocknet

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/blocknet/bfs"
)

// Path returns a shortest route from → to.
//
// Identical keys yield Distance 0 without a walk. When no route exists the
// result is Path{Distance: Unreachable} with a nil error. Returns
// ErrNilNode or ErrNodeNotFound for bad endpoints, or the context error
// from WithContext.
// Complexity: O(V+E) of the source network.
func (t *Topology) Path(from, to Node, opts ...PathOption) (p Path, err error) {
	o := pathOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	span := t.startSpan(o.ctx, "Topology.Path", from)
	defer func() {
		span.SetAttributes(attribute.Int("blocknet.distance", p.Distance))
		finishSpan(span, err)
	}()

	if from == nil || to == nil {
		return unreachable(), ErrNilNode
	}
	fk, tk := from.Key(), to.Key()
	for _, k := range []string{fk, tk} {
		if _, ok := t.nodes[k]; !ok {
			return unreachable(), fmt.Errorf("%w: %q", ErrNodeNotFound, k)
		}
	}
	if fk == tk {
		return Path{Distance: 0}, nil
	}
	// filters only remove edges, so different networks stay disconnected
	if t.nodeNet[fk] != t.nodeNet[tk] {
		return unreachable(), nil
	}

	res, err := bfs.BFS(t.graph, fk, t.walkOptions(tk, o)...)
	if err != nil {
		return unreachable(), err
	}
	ids, err := res.PathTo(tk)
	if err != nil {
		return unreachable(), nil
	}
	inner := ids[1 : len(ids)-1]
	nodes := make([]Node, len(inner))
	for i, id := range inner {
		nodes[i] = t.nodes[id]
	}

	return Path{Distance: len(ids) - 1, Nodes: nodes}, nil
}

func (t *Topology) walkOptions(target string, o pathOptions) []bfs.Option {
	bo := []bfs.Option{bfs.WithContext(o.ctx), bfs.WithStopAt(target)}
	if o.maxHops > 0 {
		bo = append(bo, bfs.WithMaxDepth(o.maxHops))
	}
	if f := o.filter; f != nil {
		bo = append(bo, bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return f(t.nodes[curr], t.nodes[nbr])
		}))
	}

	return bo
}

// Distance returns the hop count of a shortest route, or Unreachable.
func (t *Topology) Distance(from, to Node, opts ...PathOption) (int, error) {
	p, err := t.Path(from, to, opts...)
	if err != nil {
		return Unreachable, err
	}

	return p.Distance, nil
}

// IsWithinDistance reports whether to can be reached from from in at most
// limit hops. Errors, unreachable targets and negative limits all report
// false. The walk is pruned at depth limit.
func (t *Topology) IsWithinDistance(limit int, from, to Node, opts ...PathOption) bool {
	if limit < 0 || from == nil || to == nil {
		return false
	}
	if limit == 0 {
		return from.Key() == to.Key() && t.Contains(from)
	}
	p, err := t.Path(from, to, append(slices.Clone(opts), WithMaxHops(limit))...)
	if err != nil || !p.Reachable() {
		return false
	}

	return p.Distance <= limit
}
