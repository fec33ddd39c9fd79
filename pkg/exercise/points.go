package exercise

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// CalibrationSet is the ordered list of reference points recorded during
// calibration, immutable once calibration completes. An entry may be nil
// when the marker was lost at the exact instant its dwell timer fired;
// such degenerate points are recorded faithfully rather than dropped.
type CalibrationSet []*image.Point

// ErrDegeneratePoint is returned when serializing a set that contains a
// lost-marker entry, which has no (x,y) representation.
var ErrDegeneratePoint = errors.New("exercise: calibration set contains a degenerate point")

// FormatPoints renders the set in the exchanged text form
// "[(x,y),(x,y)]". The tuple shape and ordering are a durable contract
// with existing calibration files.
func FormatPoints(set CalibrationSet) (string, error) {
	if len(set) == 0 {
		return "", errors.New("exercise: empty calibration set")
	}
	parts := make([]string, 0, len(set))
	for _, p := range set {
		if p == nil {
			return "", ErrDegeneratePoint
		}
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.X, p.Y))
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}

// ParsePoints parses the "[(x,y),(x,y)]" text form back into a set.
func ParsePoints(s string) (CalibrationSet, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return nil, fmt.Errorf("exercise: malformed point list %q", s)
	}
	body := trimmed[1 : len(trimmed)-1]
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("exercise: empty point list %q", s)
	}

	var set CalibrationSet
	for _, tuple := range strings.Split(body, "),") {
		tuple = strings.TrimSpace(tuple)
		tuple = strings.TrimPrefix(tuple, "(")
		tuple = strings.TrimSuffix(tuple, ")")
		coords := strings.Split(tuple, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("exercise: malformed point %q in %q", tuple, s)
		}
		x, err := strconv.Atoi(strings.TrimSpace(coords[0]))
		if err != nil {
			return nil, fmt.Errorf("exercise: bad x coordinate in %q: %w", tuple, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(coords[1]))
		if err != nil {
			return nil, fmt.Errorf("exercise: bad y coordinate in %q: %w", tuple, err)
		}
		p := image.Pt(x, y)
		set = append(set, &p)
	}
	return set, nil
}
