// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command relaysim runs one of the reference relay circuits through the
// exhaustive explorer and prints every switching path together with the
// stability verdict.
//
// Example:
//
//	relaysim -circuit inverter -fix "In=HIGH" -out Out
//	relaysim -circuit race -fix "Trigger=HIGH" -out Out
//
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/db47h/relaysim"
	"github.com/db47h/relaysim/relaylib"
)

var circuits = map[string]func() []relaysim.Desc{
	"inverter":    relaylib.Inverter,
	"buffer":      relaylib.Buffer,
	"contention":  relaylib.Contention,
	"lockout":     relaylib.Lockout,
	"race":        relaylib.Race,
	"latch":       relaylib.SRLatch,
	"interrupter": relaylib.Interrupter,
}

func main() {
	circuit := flag.String("circuit", "inverter", "circuit to simulate: inverter, buffer, contention, lockout, race, latch, interrupter")
	fix := flag.String("fix", "", "extra fixed wires, e.g. \"In=HIGH\" (rails are always fixed)")
	out := flag.String("out", "", "comma separated output wires of interest (default: all wires)")
	depth := flag.Int("depth", relaysim.DefaultMaxDepth, "bound on relay transitions per path")
	workers := flag.Int("workers", 1, "goroutines exploring sibling branches")
	verbose := flag.Bool("verbose", false, "log exploration progress")
	flag.Parse()

	mk, ok := circuits[*circuit]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown circuit %q\n", *circuit)
		flag.Usage()
		os.Exit(2)
	}
	tp, err := relaysim.NewTopology(mk()...)
	if err != nil {
		fatal(err)
	}

	fixed := relaylib.Rails()
	if *fix != "" {
		in, err := relaysim.ParseAssignments(*fix)
		if err != nil {
			fatal(err)
		}
		for w, v := range in {
			fixed[w] = v
		}
	}

	e := relaysim.NewExplorer(tp, fixed).
		WithMaxDepth(*depth).
		WithWorkers(*workers)
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer logger.Sync()
		e = e.WithLogger(logger)
	}

	paths, err := e.Explore()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %d relays, %d wires, %d paths from %s\n\n",
		*circuit, len(tp.Relays()), len(tp.Wires()), len(paths), fixed)
	for i, p := range paths {
		fmt.Printf("path %d:\n", i)
		for _, s := range p {
			fmt.Printf("  %-40s %s\n", positions(tp, s.Relays), s.Wires)
		}
	}

	outputs := tp.Wires()
	if *out != "" {
		outputs = strings.Split(*out, ",")
		for i := range outputs {
			outputs[i] = strings.TrimSpace(outputs[i])
		}
	}
	rep, err := e.WaitForStable(outputs...)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\nall stable: %v\n", rep.AllStable)
	for _, o := range rep.Outcomes {
		fmt.Printf("outcome: %s\n", o)
	}
	if rep.Race() {
		fmt.Println("RACE: the settled output depends on relay switching order")
	}
}

func positions(tp *relaysim.Topology, rs relaysim.RelayStates) string {
	var b strings.Builder
	for _, r := range tp.Relays() {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.Name())
		b.WriteRune('=')
		b.WriteString(rs.Get(r.ID()).String())
	}
	return b.String()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
