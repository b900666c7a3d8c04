// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the profile-code to track-name table.
package model

import (
	"fmt"
	"maps"
	"slices"
)

// Profiles maps the single-character profile code found in the roster to the
// track name printed in the report.
type Profiles map[string]string

// DefaultProfiles returns the stock profile table.
func DefaultProfiles() Profiles {
	return Profiles{
		"1": "SESI",
		"2": "PEIP",
		"3": "MASS",
		"4": "LICAM",
	}
}

// Track resolves a profile code to its track name.
func (p Profiles) Track(code string) (string, error) {
	name, ok := p[code]
	if !ok {
		return "", fmt.Errorf("unknown profile code %q (known: %v)", code, p.Codes())
	}
	return name, nil
}

// Codes returns the known codes in ascending order.
func (p Profiles) Codes() []string {
	return slices.Sorted(maps.Keys(p))
}
