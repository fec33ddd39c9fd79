// Package exercise implements the rehabilitation exercise core: dwell
// calibration of reference points and cyclic repetition counting of a
// tracked marker.
package exercise

import "fmt"

// Kind identifies the motion an exercise trains. All kinds share one
// calibration/counting pipeline; they differ only in how many reference
// points are recorded.
type Kind int

const (
	Flexion Kind = iota
	Abduction
	RotationInternal
	RotationExternal
)

var kindNames = map[Kind]string{
	Flexion:          "flexion",
	Abduction:        "abduction",
	RotationInternal: "rotation-internal",
	RotationExternal: "rotation-external",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a kind name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("exercise: unknown exercise kind %q", name)
}

// PointCount returns how many calibration points the kind requires.
// Zero means calibration for the kind is not supported yet.
func (k Kind) PointCount() int {
	switch k {
	case Flexion, Abduction:
		return 2
	default:
		// TODO: rotation exercises need a circular-path calibration
		// scheme before they can record points.
		return 0
	}
}

// Limb identifies which limb performs the exercise.
type Limb int

const (
	LeftArm Limb = iota
	RightArm
	LeftLeg
	RightLeg
)

var limbNames = map[Limb]string{
	LeftArm:  "left_arm",
	RightArm: "right_arm",
	LeftLeg:  "left_leg",
	RightLeg: "right_leg",
}

// String implements fmt.Stringer.
func (l Limb) String() string {
	if n, ok := limbNames[l]; ok {
		return n
	}
	return fmt.Sprintf("limb(%d)", int(l))
}

// ParseLimb resolves a limb name.
func ParseLimb(name string) (Limb, error) {
	for l, n := range limbNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("exercise: unknown limb %q", name)
}

// PointsKey returns the key under which a limb's calibration points are
// stored in the exchanged key=value text form. The arm keys are a
// durable contract with existing calibration files.
func PointsKey(l Limb) string {
	return "calibration_points_" + l.String()
}
