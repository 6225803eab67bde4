// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A WireValue is one observed output: a wire and the state it settled on.
//
type WireValue struct {
	Wire  string
	State WireState
}

// An Outcome is the settled value of each requested output wire, in request
// order, as observed at the end of one stable path.
//
type Outcome []WireValue

func (o Outcome) String() string {
	var b strings.Builder
	for _, wv := range o {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wv.Wire)
		b.WriteRune('=')
		b.WriteString(wv.State.String())
	}
	return b.String()
}

// A Report summarizes an exhaustive exploration.
//
// AllStable is true when every path reached a fixed point within the depth
// bound. Outcomes holds the distinct output assignments observed on stable
// paths, deduplicated and sorted; paths cut off while still unstable clear
// AllStable but contribute no outcome.
//
type Report struct {
	AllStable bool
	Outcomes  []Outcome
}

// Race reports a proven race condition: every path stabilized, yet the
// outputs disagree depending on relay switching order. A multi-outcome
// report without AllStable is merely inconclusive, not a proven race.
//
func (r *Report) Race() bool {
	return r.AllStable && len(r.Outcomes) > 1
}

// WaitForStable explores every switching order and reports whether the
// circuit settles, and on which values of the named output wires.
//
func (e *Explorer) WaitForStable(outputs ...string) (*Report, error) {
	paths, err := e.Explore()
	if err != nil {
		return nil, err
	}
	rep := &Report{AllStable: true}
	seen := make(map[string]Outcome)
	for _, p := range paths {
		t := p.Terminal()
		if len(e.tp.Unstable(t.Relays, t.Wires)) > 0 {
			rep.AllStable = false
			continue
		}
		o := make(Outcome, len(outputs))
		for i, w := range outputs {
			o[i] = WireValue{Wire: w, State: t.Wires.Get(w)}
		}
		seen[o.String()] = o
	}
	keys := maps.Keys(seen)
	slices.Sort(keys)
	for _, k := range keys {
		rep.Outcomes = append(rep.Outcomes, seen[k])
	}
	return rep, nil
}
