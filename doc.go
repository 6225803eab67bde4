// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package relaysim simulates networks of electromechanical relays and proves
properties about them.

A relay is a five terminal switch: two coil pins, a common pin, a normally
open pin and an optional normally closed pin. Energizing the coil pulls the
common contact from NC to NO, with a break-before-make step in between where
the common contact touches neither side.

The simulator resolves wire signals through the network of closed relay
contacts, distinguishing a wire that is merely unconnected (Floating) from a
wire driven to two different values at once (ShortCircuit). On top of signal
resolution, an exhaustive state-space exploration enumerates every order in
which unstable relays may switch, which exposes genuine hardware hazards:
glitches during break-before-make, short circuits, races where the final
output depends on relay timing, and circuits that never settle at all.

Circuits are described as plain data:

	tp, err := relaysim.NewTopology(relaysim.Desc{
		Label: "Inverter",
		CoilA: "In", CoilB: "GND",
		Comm: "Out", NO: "GND", NC: "VCC",
	})

and analyzed through an Explorer:

	rails := relaysim.WireStates{"VCC": relaysim.High, "GND": relaysim.Low, "In": relaysim.High}
	report, err := relaysim.NewExplorer(tp, rails).WaitForStable("Out")

A report with more than one distinct outcome and AllStable set proves a race
condition rather than an under-explored search.
*/
package relaysim
