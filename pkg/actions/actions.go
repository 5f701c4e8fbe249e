// Package actions defines the closed vocabulary of motor actions an agent
// can issue and the wire codec that converts each action to and from a flat
// JSON object keyed by the "action" discriminator.
//
// The package is purely synchronous value plumbing: constructing, naming,
// encoding and decoding an action never blocks, logs, or touches shared
// state. Executing an action (Actuator) and producing one (Sampler) are
// capabilities implemented elsewhere.
package actions

import (
	"sort"
	"strings"
)

// VectorXYZ is a 3D vector with order-significant components (x, y, z).
type VectorXYZ [3]float64

// QuaternionWXYZ is a rotation quaternion with order-significant components
// (w, x, y, z).
type QuaternionWXYZ [4]float64

// DefaultConstraintDegrees is the rotation constraint applied by the
// LookDown and LookUp constructors when no explicit constraint is given.
const DefaultConstraintDegrees = 90.0

// Field is one (key, value) pair produced by an action's field enumeration.
type Field struct {
	Key   string
	Value interface{}
}

// Action is one member of the closed set of agent motor commands.
//
// Instances are produced by a Sampler or by Decode, and consumed by an
// Actuator or by Encode. They are plain immutable values; no method mutates
// the receiver.
type Action interface {
	// Name returns the canonical wire token for the variant, derived from
	// its type identifier (e.g. "look_down" for LookDown). The token doubles
	// as the wire discriminator.
	Name() string

	// AgentID returns the identifier of the agent the action targets.
	AgentID() string

	// Fields enumerates the wire fields in declaration order, starting with
	// ("action", name) and ("agent_id", id). This enumeration is the only
	// contract Encode relies on.
	Fields() []Field

	// Act routes the action to its matching entry point on the actuator.
	Act(a Actuator) error
}

// DeriveName converts a CamelCase variant identifier into its canonical
// lowercase, underscore-separated wire token: an underscore is inserted
// before every uppercase letter except a leading one, and all letters are
// lowercased (e.g. "SetSensorPitch" becomes "set_sensor_pitch").
func DeriveName(identifier string) string {
	var b strings.Builder
	for i, r := range identifier {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Names returns the wire tokens of every action variant in sorted order.
func Names() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
