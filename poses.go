package signhands

import "unicode"

// poseTable holds fingerspelling handshapes as thumb..pinky curls.
// Shapes are approximations of one-handed manual alphabet letters; digits
// reuse letter shapes where the handshapes coincide.
var poseTable = map[rune]FingerCurls{
	'a': Curls(0.2, 1.5, 1.5, 1.5, 1.5),
	'b': Curls(1.2, 0, 0, 0, 0),
	'c': Curls(0.6, 0.7, 0.7, 0.7, 0.7),
	'd': Curls(1.0, 0, 1.1, 1.1, 1.1),
	'e': Curls(1.3, 1.2, 1.2, 1.2, 1.2),
	'f': Curls(1.0, 1.0, 0, 0, 0),
	'g': Curls(0.1, 0.1, 1.5, 1.5, 1.5),
	'h': Curls(1.2, 0, 0, 1.5, 1.5),
	'i': Curls(1.2, 1.5, 1.5, 1.5, 0),
	'j': Curls(1.2, 1.5, 1.5, 1.5, 0.1),
	'k': Curls(0.3, 0, 0, 1.5, 1.5),
	'l': Curls(0, 0, 1.5, 1.5, 1.5),
	'm': Curls(1.4, 1.3, 1.3, 1.3, 1.5),
	'n': Curls(1.4, 1.3, 1.3, 1.5, 1.5),
	'o': Curls(0.8, 0.9, 0.9, 0.9, 0.9),
	'p': Curls(0.3, 0, 0.3, 1.5, 1.5),
	'q': Curls(0.2, 0.3, 1.5, 1.5, 1.5),
	'r': Curls(1.2, 0, 0.1, 1.5, 1.5),
	's': Curls(1.0, 1.5, 1.5, 1.5, 1.5),
	't': Curls(0.6, 1.3, 1.5, 1.5, 1.5),
	'u': Curls(1.2, 0.05, 0.05, 1.5, 1.5),
	'v': Curls(1.1, 0, 0, 1.4, 1.4),
	'w': Curls(1.2, 0, 0, 0, 1.5),
	'x': Curls(1.2, 0.8, 1.5, 1.5, 1.5),
	'y': Curls(0, 1.5, 1.5, 1.5, 0),
	'z': Curls(1.2, 0, 1.5, 1.5, 1.4),

	'0': Curls(0.8, 0.9, 0.9, 0.9, 0.9),
	'1': Curls(1.2, 0, 1.5, 1.5, 1.5),
	'2': Curls(1.1, 0, 0, 1.4, 1.4),
	'3': Curls(0, 0, 0, 1.5, 1.5),
	'4': Curls(1.2, 0, 0, 0, 0),
	'5': Curls(0, 0, 0, 0, 0),
	'6': Curls(1.2, 0, 0, 0, 1.5),
	'7': Curls(1.2, 0, 0, 1.5, 0),
	'8': Curls(1.2, 0, 1.5, 0, 0),
	'9': Curls(1.0, 1.0, 0, 0, 0),
}

// LookupPose returns the fingerspelling handshape for ch.
// Letters are matched case-insensitively; anything outside a–z and 0–9
// reports false.
func LookupPose(ch rune) (FingerCurls, bool) {
	c, ok := poseTable[unicode.ToLower(ch)]
	return c, ok
}

// NumPoses returns the number of fingerspelling handshapes.
func NumPoses() int {
	return len(poseTable)
}
