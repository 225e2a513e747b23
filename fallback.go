package signhands

import (
	"math"
	"unicode/utf8"
)

// Fallback archetypes for words missing from the catalog.
const (
	archetypeWave = iota
	archetypePoint
	archetypeFistPump
	archetypeThumbs
	numArchetypes
)

// fallbackArchetype picks a motion family from the tag's first character.
func fallbackArchetype(tag string) int {
	r, _ := utf8.DecodeRuneInString(tag)
	return int(r) % numArchetypes
}

// fallbackSpeed picks an angular frequency in [4, 8] from the tag length.
func fallbackSpeed(tag string) float64 {
	return float64(utf8.RuneCountInString(tag)%5 + 4)
}

// fallbackGesture derives a gesture for an unknown word. The result depends
// only on the tag, so the same word always animates the same way.
func fallbackGesture(tag string) Gesture {
	speed := fallbackSpeed(tag)
	switch fallbackArchetype(tag) {
	case archetypeWave:
		return Gesture{Wrist: wave(speed, 0.5), Fingers: shape(ShapeOpen)}
	case archetypePoint:
		return Gesture{
			Wrist:   func(t float64) Vec3 { return Vec3{X: 0.3 * math.Sin(t*speed), Y: 0.2} },
			Fingers: shape(ShapePoint),
		}
	case archetypeFistPump:
		return Gesture{
			Wrist:   func(t float64) Vec3 { return Vec3{X: -0.6 * math.Abs(math.Sin(t*speed))} },
			Fingers: shape(ShapeFist),
		}
	default:
		return Gesture{Wrist: shake(speed, 0.4), Fingers: shape(ShapeThumbsUp)}
	}
}
