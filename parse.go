// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package relaysim

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseAssignments parses a fixed-wire assignment description of the form
//
//	"VCC=HIGH, GND=LOW, In=LOW"
//
// into a WireStates map. Wire names are taken verbatim; values are HIGH or
// LOW (case-insensitive). Only driven levels may be fixed externally, so
// FLOATING and SHORT_CIRCUIT are rejected.
//
func ParseAssignments(s string) (WireStates, error) {
	ws := make(WireStates)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, errors.New("expected wire=value in " + field)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("empty wire name in " + field)
		}
		switch strings.ToUpper(strings.TrimSpace(value)) {
		case "HIGH", "1":
			ws[name] = High
		case "LOW", "0":
			ws[name] = Low
		default:
			return nil, errors.New("invalid wire value in " + field)
		}
	}
	return ws, nil
}
