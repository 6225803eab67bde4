// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the default bound on transitions per explored path.
// Circuits with feedback (latches, astables) can branch into paths
// exponential in depth times relay count; pick a deliberate bound for those.
const DefaultMaxDepth = 100

// A Snapshot is one configuration along an exploration path: the committed
// relay positions and the wire states they resolve to. Snapshots are never
// mutated once produced; each path owns its own sequence.
//
type Snapshot struct {
	Relays RelayStates
	Wires  WireStates
}

// A Path is an ordered sequence of snapshots, starting at the initial
// configuration and ending at a terminal one: a fixed point, a cycle
// closure, or a depth cutoff.
//
type Path []Snapshot

// Terminal returns the path's final snapshot.
//
func (p Path) Terminal() Snapshot { return p[len(p)-1] }

// An Explorer enumerates every order in which the unstable relays of a
// topology may switch, one relay per step. Physical relays switch at
// independent, unsynchronized speeds; each interleaving is a separate branch
// and a genuine race shows up as branches settling on different outputs.
//
// Cycle detection is scoped per path: revisiting a relay configuration seen
// earlier on the same branch models sustained oscillation and ends the
// branch, while reaching it again through a different history is legitimate
// alternate timing and keeps being explored.
//
type Explorer struct {
	tp       *Topology
	fixed    WireStates
	initial  RelayStates
	maxDepth int
	workers  int
	log      *zap.Logger
}

// NewExplorer returns an explorer for the given topology and externally
// fixed wires, starting from the all-Off configuration with DefaultMaxDepth
// and no parallelism.
//
func NewExplorer(tp *Topology, fixed WireStates) *Explorer {
	return &Explorer{
		tp:       tp,
		fixed:    fixed,
		maxDepth: DefaultMaxDepth,
		workers:  1,
		log:      zap.NewNop(),
	}
}

// WithInitial sets the initial relay configuration. Relays absent from rs
// start Off.
//
func (e *Explorer) WithInitial(rs RelayStates) *Explorer {
	e.initial = rs
	return e
}

// WithMaxDepth bounds the number of transitions per path. The bound must be
// positive; Explore reports an error otherwise.
//
func (e *Explorer) WithMaxDepth(depth int) *Explorer {
	e.maxDepth = depth
	return e
}

// WithWorkers sets the number of goroutines used to explore sibling branches
// of the initial configuration. Branches are fully independent and share
// only the immutable topology and fixed wires, so no synchronization beyond
// collecting results is needed. Values below 2 keep exploration sequential.
//
func (e *Explorer) WithWorkers(n int) *Explorer {
	e.workers = n
	return e
}

// WithLogger sets a logger for exploration tracing. The default is a nop
// logger.
//
func (e *Explorer) WithLogger(l *zap.Logger) *Explorer {
	e.log = l
	return e
}

// A frame is one pending exploration state on the explicit work stack.
// path and visited are shared, read-only, with sibling frames; expansion
// copies before extending either.
type frame struct {
	rs      RelayStates
	path    Path
	visited map[string]bool
	depth   int
}

// Explore runs the exhaustive search and returns every reachable path. Each
// path ends at a fixed point, at a configuration already seen on that same
// path, or at the depth bound; consume the result with a Report (see
// WaitForStable) to tell these apart.
//
func (e *Explorer) Explore() ([]Path, error) {
	if e.maxDepth <= 0 {
		return nil, errors.Errorf("max depth must be positive, got %d", e.maxDepth)
	}
	root := frame{rs: e.initial, depth: e.maxDepth}
	if e.workers < 2 {
		return e.run([]frame{root}), nil
	}

	// Expand the root once, then split its branches across workers the same
	// way circuit updaters are split across simulation workers.
	paths, branches := e.expand(root)
	if len(branches) == 0 {
		return paths, nil
	}
	var mu sync.Mutex
	var wg sync.WaitGroup
	workers := e.workers
	for len(branches) > 0 {
		size := len(branches) / workers
		if size*workers < len(branches) {
			size++
		}
		batch := branches[:size]
		branches = branches[size:]
		workers--
		wg.Add(1)
		go func(batch []frame) {
			defer wg.Done()
			got := e.run(batch)
			mu.Lock()
			paths = append(paths, got...)
			mu.Unlock()
		}(batch)
	}
	wg.Wait()
	return paths, nil
}

// run drives the explicit stack to exhaustion. Depth-first, so memory stays
// proportional to path length times branching factor rather than to the
// whole state space.
func (e *Explorer) run(stack []frame) []Path {
	var paths []Path
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		done, branches := e.expand(f)
		paths = append(paths, done...)
		stack = append(stack, branches...)
	}
	return paths
}

// expand resolves one configuration and either terminates its path or forks
// one branch per (unstable relay, legal next position).
func (e *Explorer) expand(f frame) (paths []Path, branches []frame) {
	wires := e.tp.Resolve(f.rs, e.fixed)

	path := make(Path, len(f.path)+1)
	copy(path, f.path)
	path[len(f.path)] = Snapshot{Relays: f.rs, Wires: wires}

	key := e.tp.stateKey(f.rs)
	if f.visited[key] || f.depth <= 0 {
		e.log.Debug("path ended",
			zap.String("state", key),
			zap.Bool("cycle", f.visited[key]),
			zap.Int("len", len(path)))
		return []Path{path}, nil
	}
	unstable := e.tp.Unstable(f.rs, wires)
	if len(unstable) == 0 {
		e.log.Debug("path stabilized",
			zap.String("state", key),
			zap.Int("len", len(path)))
		return []Path{path}, nil
	}

	visited := make(map[string]bool, len(f.visited)+1)
	for k := range f.visited {
		visited[k] = true
	}
	visited[key] = true

	for _, id := range unstable {
		r := e.tp.byID[id]
		for _, pos := range transitions(r, f.rs, wires) {
			branches = append(branches, frame{
				rs:      f.rs.with(id, pos),
				path:    path,
				visited: visited,
				depth:   f.depth - 1,
			})
		}
	}
	return nil, branches
}
