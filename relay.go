// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// An ID is the opaque identity of a relay within a topology, assigned at
// construction. All relay-state maps key on IDs, never on labels: labels are
// cosmetic, may be empty and may repeat, so two structurally identical
// relays remain distinct entities.
//
type ID uuid.UUID

func (id ID) String() string { return uuid.UUID(id).String() }

// ErrRelayNotFound is returned (wrapped) when an operation targets a relay
// identity that is not part of the topology.
//
var ErrRelayNotFound = errors.New("relay not found in topology")

// A Desc describes one relay: the wire each of its five terminals is soldered
// to. CoilA, CoilB and Comm are required. NO and NC are optional; a missing
// contact simply means the relay connects nothing in that position.
//
type Desc struct {
	Label string // cosmetic only, never a lookup key

	CoilA string // coil drive pin A
	CoilB string // coil drive pin B
	Comm  string // common contact
	NO    string // normally open contact, optional
	NC    string // normally closed contact, optional
}

// A Relay is a relay mounted in a topology: its descriptor plus its assigned
// identity.
//
type Relay struct {
	Desc
	id ID
}

// ID returns the relay's identity.
//
func (r *Relay) ID() ID { return r.id }

// Name returns the relay's label if set, its identity otherwise. For
// diagnostics only.
//
func (r *Relay) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return r.id.String()
}

// A Topology is an immutable set of relays and the wires their terminals
// share. Build one with NewTopology, then feed it to Resolve, an Explorer,
// or WaitForStable. A Topology is safe for concurrent use.
//
type Topology struct {
	relays []*Relay
	byID   map[ID]*Relay
	wires  []string       // every referenced wire name, sorted
	windex map[string]int // wire name -> index in wires
}

// NewTopology mounts the given relay descriptors into a topology, assigning
// each relay a fresh identity. It fails if descs is empty or if any
// descriptor is missing a required terminal (coil A, coil B or common).
//
func NewTopology(descs ...Desc) (*Topology, error) {
	if len(descs) == 0 {
		return nil, errors.New("empty relay list")
	}
	tp := &Topology{
		relays: make([]*Relay, 0, len(descs)),
		byID:   make(map[ID]*Relay, len(descs)),
		windex: make(map[string]int),
	}
	for i, d := range descs {
		if err := checkDesc(&d); err != nil {
			return nil, errors.Wrapf(err, "invalid relay #%d %q", i, d.Label)
		}
		r := &Relay{Desc: d, id: ID(uuid.New())}
		tp.relays = append(tp.relays, r)
		tp.byID[r.id] = r
		tp.addWire(d.CoilA)
		tp.addWire(d.CoilB)
		tp.addWire(d.Comm)
		if d.NO != "" {
			tp.addWire(d.NO)
		}
		if d.NC != "" {
			tp.addWire(d.NC)
		}
	}
	slices.Sort(tp.wires)
	for i, w := range tp.wires {
		tp.windex[w] = i
	}
	return tp, nil
}

func checkDesc(d *Desc) error {
	switch {
	case d.CoilA == "":
		return errors.New("no wire on terminal coil_a")
	case d.CoilB == "":
		return errors.New("no wire on terminal coil_b")
	case d.Comm == "":
		return errors.New("no wire on terminal comm")
	}
	return nil
}

func (tp *Topology) addWire(name string) {
	if _, ok := tp.windex[name]; !ok {
		tp.windex[name] = len(tp.wires)
		tp.wires = append(tp.wires, name)
	}
}

// Relays returns the topology's relays in construction order. The returned
// slice must not be modified.
//
func (tp *Topology) Relays() []*Relay { return tp.relays }

// Relay returns the relay with the given identity.
//
func (tp *Topology) Relay(id ID) (*Relay, error) {
	r, ok := tp.byID[id]
	if !ok {
		return nil, errors.Wrap(ErrRelayNotFound, id.String())
	}
	return r, nil
}

// Wires returns the name of every wire referenced by any relay terminal, in
// sorted order. The returned slice must not be modified.
//
func (tp *Topology) Wires() []string { return tp.wires }

// stateKey renders relay states as a compact key for per-path cycle
// detection. Relays are visited in construction order, making the key
// deterministic without sorting.
func (tp *Topology) stateKey(rs RelayStates) string {
	b := make([]byte, len(tp.relays))
	for i, r := range tp.relays {
		b[i] = byte('0' + rs.Get(r.id))
	}
	return string(b)
}
