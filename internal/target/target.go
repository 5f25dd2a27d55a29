// Package target defines the closed set of buildable firmware variants.
package target

import "fmt"

// A buildable firmware variant of the split keyboard.
type Target int

const (
	// Firmware for the left half.
	Left Target = iota

	// Firmware for the right half.
	Right

	// Settings-reset firmware, flashed to clear persisted state such as
	// Bluetooth bonds.
	SettingsReset
)

// Returns all targets in build order.
//
// The order is fixed: left, right, settings-reset. Builds always process
// targets in this sequence, never in parallel.
func All() []Target {
	return []Target{Left, Right, SettingsReset}
}

// Returns the symbolic name used in flags, logs, and reports.
func (t Target) String() string {
	switch t {
	case Left:
		return "left"
	case Right:
		return "right"
	case SettingsReset:
		return "settings-reset"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Returns the shield identifier passed to the build system.
func (t Target) Shield() string {
	switch t {
	case Left:
		return "sofle_left"
	case Right:
		return "sofle_right"
	case SettingsReset:
		return "settings_reset"
	}
	return ""
}

// Returns the artifact filename for this target when built for the given
// board (e.g., "sofle_left-nice_nano_v2.uf2").
func (t Target) Artifact(board string) string {
	return fmt.Sprintf("%s-%s.uf2", t.Shield(), board)
}
