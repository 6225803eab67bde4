// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package relaylib provides a library of ready-made relay topologies for
// relaysim: small reference circuits that each exhibit one interesting
// behavior (inversion, break-before-make glitches, races, memory,
// oscillation).
//
// The circuits are plain data. Build them with relaysim.NewTopology and
// power them with Rails plus whatever inputs they name.
//
package relaylib

import (
	"github.com/db47h/relaysim"
)

// Power rail wire names shared by all circuits in this package.
const (
	VCC = "VCC"
	GND = "GND"
)

// Rails returns the fixed power rail assignment: VCC high, GND low.
// The result is a fresh map; add the circuit's input wires to it.
//
func Rails() relaysim.WireStates {
	return relaysim.WireStates{VCC: relaysim.High, GND: relaysim.Low}
}

// Inverter is a one-relay inverter. The output is the common contact,
// resting on VCC (NC) and pulled to GND (NO) when In energizes the coil.
//
//	Inputs: In
//	Outputs: Out = !In
//
func Inverter() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Inverter", CoilA: "In", CoilB: GND, Comm: "Out", NO: GND, NC: VCC},
	}
}

// Buffer is a one-relay buffer that glitches: while the relay switches, the
// output hangs floating between GND (NC) and VCC (NO).
//
//	Inputs: In
//	Outputs: Out = In, with a Floating step during every transition
//
func Buffer() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Buffer", CoilA: "In", CoilB: GND, Comm: "Out", NO: VCC, NC: GND},
	}
}

// Contention is two relays driving the same output from one trigger: one
// pulls Out to VCC, the other to GND. Both coils stay energized, so every
// switching order converges to both relays closed and the output
// short-circuited.
//
//	Inputs: Trigger
//	Outputs: Out (SHORT_CIRCUIT once settled)
//
func Contention() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "PullHigh", CoilA: "Trigger", CoilB: GND, Comm: VCC, NO: "Out"},
		{Label: "PullLow", CoilA: "Trigger", CoilB: GND, Comm: GND, NO: "Out"},
	}
}

// Lockout is a pair of mutually exclusive relays: each coil returns to
// ground through the other relay's normally closed contact, so whichever
// relay picks up first cuts the other's coil. Which side wins depends
// purely on switching order; the loser's coil return is left floating.
//
//	Inputs: Trigger
//	Outputs: g1, g2 (winner LOW, loser FLOATING)
//
func Lockout() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Lock1", CoilA: "Trigger", CoilB: "g1", Comm: GND, NC: "g2"},
		{Label: "Lock2", CoilA: "Trigger", CoilB: "g2", Comm: GND, NC: "g1"},
	}
}

// Race drives a single output to opposing values depending on relay timing:
// a Lockout pair decides a winner, and two driver relays sharing the lockout
// coils pull Out to VCC or GND for the side that won. Every switching order
// stabilizes, but on different output values - a provable race condition.
//
//	Inputs: Trigger
//	Outputs: Out (HIGH or LOW depending on which lock picks up first)
//
func Race() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Lock1", CoilA: "Trigger", CoilB: "g1", Comm: GND, NC: "g2"},
		{Label: "Lock2", CoilA: "Trigger", CoilB: "g2", Comm: GND, NC: "g1"},
		{Label: "DriveHigh", CoilA: "Trigger", CoilB: "g1", Comm: VCC, NO: "Out"},
		{Label: "DriveLow", CoilA: "Trigger", CoilB: "g2", Comm: GND, NO: "Out"},
	}
}

// SRLatch is a set/reset latch: two input relays drive Q and Q_bar, and two
// hold relays feed each output back to its own coil so the latch remembers
// a pulse after it ends.
//
//	Inputs: S, R
//	Outputs: Q, Q_bar
//
func SRLatch() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Set", CoilA: "S", CoilB: GND, Comm: VCC, NO: "Q"},
		{Label: "Reset", CoilA: "R", CoilB: GND, Comm: VCC, NO: "Q_bar"},
		{Label: "HoldQ", CoilA: "Q", CoilB: GND, Comm: VCC, NO: "Q"},
		{Label: "HoldQbar", CoilA: "Q_bar", CoilB: GND, Comm: VCC, NO: "Q_bar"},
	}
}

// Interrupter is a self-interrupting relay (an electromechanical buzzer):
// the coil is fed through the relay's own NC contact, so closing the
// contact removes the drive. The circuit never settles.
//
//	Inputs: none beyond the rails
//	Outputs: Osc (oscillates, never stable)
//
func Interrupter() []relaysim.Desc {
	return []relaysim.Desc{
		{Label: "Buzzer", CoilA: "Osc", CoilB: GND, Comm: "Osc", NC: VCC},
	}
}
