package relaysim_test

import (
	"testing"

	rsim "github.com/db47h/relaysim"
)

func checkReport(t *testing.T, rep *rsim.Report, stable bool, outcomes ...string) {
	t.Helper()
	if rep.AllStable != stable {
		t.Errorf("AllStable = %v, want %v", rep.AllStable, stable)
	}
	if len(rep.Outcomes) != len(outcomes) {
		t.Fatalf("got %d outcomes %v, want %d %v", len(rep.Outcomes), rep.Outcomes, len(outcomes), outcomes)
	}
	for i, want := range outcomes {
		if got := rep.Outcomes[i].String(); got != want {
			t.Errorf("outcome %d = %q, want %q", i, got, want)
		}
	}
}

func TestWaitForStable_inverter(t *testing.T) {
	tp := mustTopology(t, inverter)
	td := []struct {
		name string
		in   rsim.WireState
		want string
	}{
		{"low in, high out", rsim.Low, "Out=HIGH"},
		{"high in, low out", rsim.High, "Out=LOW"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			rep, err := rsim.NewExplorer(tp, rails(rsim.WireStates{"In": d.in})).WaitForStable("Out")
			if err != nil {
				t.Fatal(err)
			}
			checkReport(t, rep, true, d.want)
			if rep.Race() {
				t.Error("inverter reported a race")
			}
		})
	}
}

// every switching order converges to both drivers closed: a single,
// deterministic outcome, even though it is a short.
func TestWaitForStable_contention(t *testing.T) {
	tp := mustTopology(t,
		rsim.Desc{Label: "PullHigh", CoilA: "Trigger", CoilB: "GND", Comm: "VCC", NO: "Out"},
		rsim.Desc{Label: "PullLow", CoilA: "Trigger", CoilB: "GND", Comm: "GND", NO: "Out"},
	)
	rep, err := rsim.NewExplorer(tp, rails(rsim.WireStates{"Trigger": rsim.High})).WaitForStable("Out")
	if err != nil {
		t.Fatal(err)
	}
	checkReport(t, rep, true, "Out=SHORT_CIRCUIT")
	if rep.Race() {
		t.Error("deterministic short reported as a race")
	}
}

// the lockout pair stabilizes on whichever relay moved first: two distinct
// outcomes with every path stable is a proven race.
func TestWaitForStable_race(t *testing.T) {
	tp := mustTopology(t, relayRace()...)
	rep, err := rsim.NewExplorer(tp, rails(rsim.WireStates{"Trigger": rsim.High})).WaitForStable("Out")
	if err != nil {
		t.Fatal(err)
	}
	checkReport(t, rep, true, "Out=HIGH", "Out=LOW")
	if !rep.Race() {
		t.Error("race not detected")
	}
}

func TestWaitForStable_lockout(t *testing.T) {
	tp := mustTopology(t,
		rsim.Desc{Label: "Lock1", CoilA: "Trigger", CoilB: "g1", Comm: "GND", NC: "g2"},
		rsim.Desc{Label: "Lock2", CoilA: "Trigger", CoilB: "g2", Comm: "GND", NC: "g1"},
	)
	rep, err := rsim.NewExplorer(tp, rails(rsim.WireStates{"Trigger": rsim.High})).WaitForStable("g1", "g2")
	if err != nil {
		t.Fatal(err)
	}
	checkReport(t, rep, true, "g1=FLOATING, g2=LOW", "g1=LOW, g2=FLOATING")
	if !rep.Race() {
		t.Error("race not detected")
	}
}

// the oscillator closes a cycle while still unstable: no stable outcome at
// all, and AllStable is cleared instead of raising an error.
func TestWaitForStable_oscillator(t *testing.T) {
	tp := mustTopology(t, interrupter)
	rep, err := rsim.NewExplorer(tp, rails(nil)).WaitForStable("Osc")
	if err != nil {
		t.Fatal(err)
	}
	checkReport(t, rep, false)
	if rep.Race() {
		t.Error("an unstabilized circuit cannot prove a race")
	}
}

func TestWaitForStable_latch(t *testing.T) {
	latch := []rsim.Desc{
		{Label: "Set", CoilA: "S", CoilB: "GND", Comm: "VCC", NO: "Q"},
		{Label: "Reset", CoilA: "R", CoilB: "GND", Comm: "VCC", NO: "Q_bar"},
		{Label: "HoldQ", CoilA: "Q", CoilB: "GND", Comm: "VCC", NO: "Q"},
		{Label: "HoldQbar", CoilA: "Q_bar", CoilB: "GND", Comm: "VCC", NO: "Q_bar"},
	}

	t.Run("set", func(t *testing.T) {
		tp := mustTopology(t, latch...)
		fixed := rails(rsim.WireStates{"S": rsim.High, "R": rsim.Low})
		rep, err := rsim.NewExplorer(tp, fixed).WaitForStable("Q", "Q_bar")
		if err != nil {
			t.Fatal(err)
		}
		checkReport(t, rep, true, "Q=HIGH, Q_bar=FLOATING")
	})

	// after the set pulse ends, the hold relay keeps feeding its own coil:
	// the latch remembers.
	t.Run("hold", func(t *testing.T) {
		tp := mustTopology(t, latch...)
		var set, holdQ rsim.ID
		for _, r := range tp.Relays() {
			switch r.Label {
			case "Set":
				set = r.ID()
			case "HoldQ":
				holdQ = r.ID()
			}
		}
		fixed := rails(rsim.WireStates{"S": rsim.Low, "R": rsim.Low})
		rep, err := rsim.NewExplorer(tp, fixed).
			WithInitial(rsim.RelayStates{set: rsim.On, holdQ: rsim.On}).
			WaitForStable("Q", "Q_bar")
		if err != nil {
			t.Fatal(err)
		}
		checkReport(t, rep, true, "Q=HIGH, Q_bar=FLOATING")
	})
}

func TestWaitForStable_invalidDepth(t *testing.T) {
	tp := mustTopology(t, inverter)
	if _, err := rsim.NewExplorer(tp, nil).WithMaxDepth(0).WaitForStable("Out"); err == nil {
		t.Fatal("expected error")
	}
}
