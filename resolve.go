// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

// Signal resolution. Closed relay contacts join wires into connection
// groups; within a group, externally fixed wires are the only drivers:
//
//	no driver          -> every wire in the group is Floating
//	one driven value   -> every wire takes that value
//	conflicting values -> every non-fixed wire is ShortCircuit
//
// Fixed wires are authoritative and keep their asserted value even when
// their group conflicts. Connection groups are computed with a union-find
// over wire indices, so the partition (and the resolved map) is independent
// of relay processing order.

// Resolve computes the state of every wire in the topology given committed
// relay positions and the externally fixed wires (power rails and inputs).
// It is a pure function: inputs are not modified, and identical inputs
// always produce an identical result.
//
// Contact edges contributed per relay position:
//
//	On        comm-NO (if the relay has an NO contact)
//	Off       comm-NC (if the relay has an NC contact)
//	Switching none
//
func (tp *Topology) Resolve(rs RelayStates, fixed WireStates) WireStates {
	u := newUnion(len(tp.wires))
	for _, r := range tp.relays {
		switch rs.Get(r.id) {
		case On:
			if r.NO != "" {
				u.union(tp.windex[r.Comm], tp.windex[r.NO])
			}
		case Off:
			if r.NC != "" {
				u.union(tp.windex[r.Comm], tp.windex[r.NC])
			}
		case Switching:
			// break-before-make: connected to neither contact
		}
	}

	// Collect the distinct asserted values reaching each group. Only fixed
	// wires drive; everything else is a passive conductor.
	type drive struct {
		value    WireState
		conflict bool
	}
	drives := make(map[int]drive)
	for i, w := range tp.wires {
		v, ok := fixed[w]
		if !ok || !v.asserted() {
			continue
		}
		root := u.find(i)
		d, seen := drives[root]
		switch {
		case !seen:
			drives[root] = drive{value: v}
		case d.value != v:
			d.conflict = true
			drives[root] = d
		}
	}

	out := make(WireStates, len(tp.wires))
	for i, w := range tp.wires {
		if v, ok := fixed[w]; ok {
			// authoritative, even inside a conflicting group
			out[w] = v
			continue
		}
		d, ok := drives[u.find(i)]
		switch {
		case !ok:
			out[w] = Floating
		case d.conflict:
			out[w] = ShortCircuit
		default:
			out[w] = d.value
		}
	}
	return out
}

// union-find with path halving and union by rank.
type union struct {
	parent []int
	rank   []byte
}

func newUnion(n int) *union {
	u := &union{parent: make([]int, n), rank: make([]byte, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *union) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *union) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
