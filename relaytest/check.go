// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package relaytest provides utility functions for testing relay circuits.
//
package relaytest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/db47h/relaysim"
)

// MustTopology builds a topology from descs and fails the test on error.
//
func MustTopology(t *testing.T, descs ...relaysim.Desc) *relaysim.Topology {
	t.Helper()
	tp, err := relaysim.NewTopology(descs...)
	if err != nil {
		t.Fatal(err)
	}
	return tp
}

// ByLabel returns the first relay carrying the given label. Labels are not
// identities and may repeat; this is a test convenience only.
//
func ByLabel(t *testing.T, tp *relaysim.Topology, label string) *relaysim.Relay {
	t.Helper()
	for _, r := range tp.Relays() {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no relay labeled %q", label)
	return nil
}

// CheckWires compares the wires named in want against got, reporting each
// mismatch. Wires absent from want are ignored.
//
func CheckWires(t *testing.T, got, want relaysim.WireStates) {
	t.Helper()
	for name, w := range want {
		if g := got.Get(name); g != w {
			t.Errorf("wire %s = %v, want %v", name, g, w)
		}
	}
}

// CheckReport compares a stability report against the expected stability
// flag and outcome renderings (in sorted order, as the report keeps them).
//
func CheckReport(t *testing.T, rep *relaysim.Report, stable bool, outcomes ...string) {
	t.Helper()
	if rep.AllStable != stable {
		t.Errorf("AllStable = %v, want %v", rep.AllStable, stable)
	}
	got := make([]string, len(rep.Outcomes))
	for i, o := range rep.Outcomes {
		got[i] = o.String()
	}
	if diff := cmp.Diff(outcomes, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}
