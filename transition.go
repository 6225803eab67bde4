// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

// energized reports whether the relay's coil is driven: coil A high and
// coil B low. Any other combination, including a floating or shorted coil
// pin, leaves the coil de-energized.
func energized(r *Relay, ws WireStates) bool {
	return ws.Get(r.CoilA) == High && ws.Get(r.CoilB) == Low
}

// Unstable returns the identities of relays whose committed position
// disagrees with their coil's current energization, plus any relay caught
// mid-switch (Switching must always progress). The result is in topology
// construction order; an empty result means the configuration is a fixed
// point.
//
func (tp *Topology) Unstable(rs RelayStates, ws WireStates) []ID {
	var ids []ID
	for _, r := range tp.relays {
		e := energized(r, ws)
		switch rs.Get(r.id) {
		case Off:
			if e {
				ids = append(ids, r.id)
			}
		case On:
			if !e {
				ids = append(ids, r.id)
			}
		case Switching:
			ids = append(ids, r.id)
		}
	}
	return ids
}

// Transitions returns the legal next positions for one relay under the
// current wire states. Break-before-make leaves exactly one legal move in
// every unstable case, and none in a stable one:
//
//	Off, energized        -> Switching
//	On, de-energized      -> Switching
//	Switching             -> On if energized, Off otherwise
//	otherwise             -> no move
//
// Transitions fails with ErrRelayNotFound if id is not part of the topology.
//
func (tp *Topology) Transitions(id ID, rs RelayStates, ws WireStates) ([]RelayPosition, error) {
	r, err := tp.Relay(id)
	if err != nil {
		return nil, err
	}
	return transitions(r, rs, ws), nil
}

func transitions(r *Relay, rs RelayStates, ws WireStates) []RelayPosition {
	e := energized(r, ws)
	switch rs.Get(r.id) {
	case Off:
		if e {
			return []RelayPosition{Switching}
		}
	case On:
		if !e {
			return []RelayPosition{Switching}
		}
	case Switching:
		if e {
			return []RelayPosition{On}
		}
		return []RelayPosition{Off}
	}
	return nil
}

// Apply commits a single relay's move to pos and re-resolves the wires,
// returning fresh relay and wire state snapshots. The inputs are not
// modified. Apply fails with ErrRelayNotFound if id is not part of the
// topology.
//
func (tp *Topology) Apply(id ID, pos RelayPosition, rs RelayStates, fixed WireStates) (RelayStates, WireStates, error) {
	if _, err := tp.Relay(id); err != nil {
		return nil, nil, err
	}
	nrs := rs.with(id, pos)
	return nrs, tp.Resolve(nrs, fixed), nil
}
