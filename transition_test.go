package relaysim_test

import (
	"testing"

	"github.com/pkg/errors"

	rsim "github.com/db47h/relaysim"
)

// coil wires are fixed directly so each energization case can be set up
// without resolving anything.
var plain = rsim.Desc{CoilA: "ca", CoilB: "cb", Comm: "comm", NO: "no", NC: "nc"}

func coil(a, b rsim.WireState) rsim.WireStates {
	return rsim.WireStates{"ca": a, "cb": b}
}

func TestTransitions(t *testing.T) {
	td := []struct {
		name  string
		pos   rsim.RelayPosition
		wires rsim.WireStates
		want  []rsim.RelayPosition
	}{
		{"off energized", rsim.Off, coil(rsim.High, rsim.Low), []rsim.RelayPosition{rsim.Switching}},
		{"off idle", rsim.Off, coil(rsim.Low, rsim.Low), nil},
		{"on de-energized", rsim.On, coil(rsim.Low, rsim.Low), []rsim.RelayPosition{rsim.Switching}},
		{"on energized", rsim.On, coil(rsim.High, rsim.Low), nil},
		{"switching completes to on", rsim.Switching, coil(rsim.High, rsim.Low), []rsim.RelayPosition{rsim.On}},
		{"switching falls back to off", rsim.Switching, coil(rsim.Low, rsim.Low), []rsim.RelayPosition{rsim.Off}},
		// anything but a cleanly driven coil counts as de-energized
		{"floating coil pin", rsim.Off, coil(rsim.Floating, rsim.Low), nil},
		{"shorted coil pin", rsim.Off, coil(rsim.High, rsim.ShortCircuit), nil},
		{"reversed coil", rsim.Off, coil(rsim.Low, rsim.High), nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			tp := mustTopology(t, plain)
			id := tp.Relays()[0].ID()
			got, err := tp.Transitions(id, rsim.RelayStates{id: d.pos}, d.wires)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(d.want) {
				t.Fatalf("Transitions = %v, want %v", got, d.want)
			}
			for i := range d.want {
				if got[i] != d.want[i] {
					t.Fatalf("Transitions = %v, want %v", got, d.want)
				}
			}
		})
	}
}

func TestUnstable(t *testing.T) {
	td := []struct {
		name     string
		pos      rsim.RelayPosition
		wires    rsim.WireStates
		unstable bool
	}{
		{"off energized", rsim.Off, coil(rsim.High, rsim.Low), true},
		{"off idle", rsim.Off, coil(rsim.Low, rsim.Low), false},
		{"on energized", rsim.On, coil(rsim.High, rsim.Low), false},
		{"on de-energized", rsim.On, coil(rsim.Low, rsim.Low), true},
		{"switching always progresses", rsim.Switching, coil(rsim.High, rsim.Low), true},
		{"switching de-energized still progresses", rsim.Switching, coil(rsim.Floating, rsim.Floating), true},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			tp := mustTopology(t, plain)
			id := tp.Relays()[0].ID()
			ids := tp.Unstable(rsim.RelayStates{id: d.pos}, d.wires)
			if got := len(ids) > 0; got != d.unstable {
				t.Errorf("unstable = %v, want %v", got, d.unstable)
			}
		})
	}
}

// missing relay-state entries default to Off.
func TestUnstable_defaultOff(t *testing.T) {
	tp := mustTopology(t, plain)
	if ids := tp.Unstable(nil, coil(rsim.High, rsim.Low)); len(ids) != 1 {
		t.Fatalf("got %d unstable relays, want 1", len(ids))
	}
	if ids := tp.Unstable(nil, coil(rsim.Low, rsim.Low)); len(ids) != 0 {
		t.Fatalf("got %d unstable relays, want 0", len(ids))
	}
}

func TestApply(t *testing.T) {
	tp := mustTopology(t, plain)
	id := tp.Relays()[0].ID()
	before := rsim.RelayStates{id: rsim.Off}
	fixed := rsim.WireStates{"no": rsim.High, "nc": rsim.Low}

	states, wires, err := tp.Apply(id, rsim.On, before, fixed)
	if err != nil {
		t.Fatal(err)
	}
	if states.Get(id) != rsim.On {
		t.Errorf("position = %v, want ON", states.Get(id))
	}
	if wires.Get("comm") != rsim.High {
		t.Errorf("comm = %v, want HIGH", wires.Get("comm"))
	}
	// snapshots are fresh, inputs untouched
	if before.Get(id) != rsim.Off {
		t.Error("Apply modified its input relay states")
	}
}

func TestApply_notFound(t *testing.T) {
	tp := mustTopology(t, plain)
	other := mustTopology(t, plain)
	id := other.Relays()[0].ID()
	_, _, err := tp.Apply(id, rsim.On, nil, nil)
	if errors.Cause(err) != rsim.ErrRelayNotFound {
		t.Fatalf("got %v, want ErrRelayNotFound", err)
	}
	if _, err = tp.Transitions(id, nil, nil); errors.Cause(err) != rsim.ErrRelayNotFound {
		t.Fatalf("got %v, want ErrRelayNotFound", err)
	}
}
