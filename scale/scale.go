package scale

import (
	"strings"
)

// Mode is a scale pattern: semitone degrees above the root, in ascending
// order. The degree order doubles as the tie-break order when looking for
// the nearest scale tone.
type Mode struct {
	Name    string
	Degrees []int
}

// Modes is scanned front to back when matching a key's mode suffix, and the
// first match wins. That means "Cmixolydian" resolves to lydian (with an
// unrecognized root), same as the tool has always behaved, so the order
// here must not be rearranged.
var Modes = []Mode{
	{"major", []int{0, 2, 4, 5, 7, 9, 11}},
	{"minor", []int{0, 2, 3, 5, 7, 8, 10}},
	{"dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	{"phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	{"lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	{"mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	{"aeolian", []int{0, 2, 3, 5, 7, 8, 10}},
	{"locrian", []int{0, 1, 3, 5, 6, 8, 10}},
}

// NoteNames maps pitch class to name; the index is the pitch class.
var NoteNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// ParseKey splits a key string like "Dminor" or "f lydian" into a root
// pitch class and a mode. Unrecognized roots silently fall back to C and a
// missing mode suffix to major.
func ParseKey(keyStr string) (int, Mode) {
	keyStr = strings.ToLower(strings.ReplaceAll(keyStr, " ", ""))

	mode := Modes[0]
	for _, m := range Modes {
		if strings.HasSuffix(keyStr, m.Name) {
			mode = m
			keyStr = strings.TrimSuffix(keyStr, m.Name)
			break
		}
	}

	root := 0
	for i, name := range NoteNames {
		if strings.ToLower(name) == keyStr {
			root = i
			break
		}
	}
	return root, mode
}

// PitchClasses returns the mode's pitch-class set rooted at root, in
// ascending-degree order.
func (m Mode) PitchClasses(root int) []int {
	tones := make([]int, len(m.Degrees))
	for i, degree := range m.Degrees {
		tones[i] = (root + degree) % 12
	}
	return tones
}

// Contains reports whether pitchClass is one of tones.
func Contains(tones []int, pitchClass int) bool {
	for _, t := range tones {
		if t == pitchClass {
			return true
		}
	}
	return false
}

// NearestTone picks the tone with minimal raw pitch-class distance to
// pitchClass. Ties keep the earlier tone in the slice, so for scale sets
// built by PitchClasses the lower scale degree wins.
func NearestTone(pitchClass int, tones []int) int {
	best := tones[0]
	bestDist := absInt(pitchClass - tones[0])
	for _, t := range tones[1:] {
		if d := absInt(pitchClass - t); d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}

// ShiftTo returns the signed semitone shift from pitchClass to tone,
// wrapped into [-6, 6] so the shorter enharmonic direction is taken.
func ShiftTo(pitchClass, tone int) int {
	shift := tone - pitchClass
	if shift > 6 {
		shift -= 12
	} else if shift < -6 {
		shift += 12
	}
	return shift
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
