// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A WireState is the logical signal level of a single wire.
//
// Floating and ShortCircuit are normal, representable outcomes, not errors:
// Floating means no driver asserts a value anywhere in the wire's connection
// group, ShortCircuit means two drivers assert different values on it.
// The two must never be conflated.
//
type WireState int

// Wire states.
const (
	Low WireState = iota
	High
	Floating
	ShortCircuit
)

func (w WireState) String() string {
	switch w {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	case Floating:
		return "FLOATING"
	case ShortCircuit:
		return "SHORT_CIRCUIT"
	}
	return "WireState(" + strconv.Itoa(int(w)) + ")"
}

// asserted reports whether the state is a driven logic level rather than the
// absence or corruption of one.
func (w WireState) asserted() bool {
	return w == Low || w == High
}

// A RelayPosition is the mechanical position of a relay's common contact.
// It is independent of the coil state at the same instant: the coil may have
// changed long before the contact catches up.
//
type RelayPosition int

// Relay positions. A relay never moves directly between Off and On; it
// always passes through Switching, where the common contact touches neither
// the NC nor the NO terminal (break-before-make).
const (
	Off RelayPosition = iota
	Switching
	On
)

func (p RelayPosition) String() string {
	switch p {
	case Off:
		return "OFF"
	case Switching:
		return "SWITCHING"
	case On:
		return "ON"
	}
	return "RelayPosition(" + strconv.Itoa(int(p)) + ")"
}

// WireStates maps wire names to signal levels. A missing entry reads as
// Floating.
//
type WireStates map[string]WireState

// Get returns the state of the named wire, Floating if absent.
//
func (ws WireStates) Get(name string) WireState {
	if s, ok := ws[name]; ok {
		return s
	}
	return Floating
}

// Clone returns an independent copy of ws.
//
func (ws WireStates) Clone() WireStates {
	return maps.Clone(ws)
}

func (ws WireStates) String() string {
	names := maps.Keys(ws)
	slices.Sort(names)
	var b strings.Builder
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(ws[n].String())
	}
	return b.String()
}

// RelayStates maps relay identities to committed switch positions. A missing
// entry reads as Off.
//
type RelayStates map[ID]RelayPosition

// Get returns the position of the identified relay, Off if absent.
//
func (rs RelayStates) Get(id ID) RelayPosition {
	if p, ok := rs[id]; ok {
		return p
	}
	return Off
}

// Clone returns an independent copy of rs.
//
func (rs RelayStates) Clone() RelayStates {
	return maps.Clone(rs)
}

// with returns a copy of rs with one relay moved to pos.
func (rs RelayStates) with(id ID, pos RelayPosition) RelayStates {
	n := rs.Clone()
	if n == nil {
		n = make(RelayStates, 1)
	}
	n[id] = pos
	return n
}
