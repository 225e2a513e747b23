package signhands

import "sort"

// Bespoke handshapes used by several catalog entries.
var (
	shapeFlat  = Curls(0.3, 0, 0, 0, 0)
	shapeBent  = Curls(0.4, 0.8, 0.8, 0.8, 0.8)
	shapeClaw  = Curls(0.5, 0.9, 0.9, 0.9, 0.9)
	shapeO     = Curls(0.8, 0.9, 0.9, 0.9, 0.9)
	shapeC     = Curls(0.6, 0.7, 0.7, 0.7, 0.7)
	shapeV     = Curls(1.1, 0, 0, 1.4, 1.4)
	shapeY     = Curls(0, 1.5, 1.5, 1.5, 0)
	shapeL     = Curls(0, 0, 1.5, 1.5, 1.5)
	shapeILY   = Curls(0, 0, 1.5, 1.5, 0)
	shapeH     = Curls(1.2, 0, 0, 1.5, 1.5)
	shapeX     = Curls(1.2, 0.8, 1.5, 1.5, 1.5)
	shapeF     = Curls(1.0, 1.0, 0, 0, 0)
	shapePinch = Curls(0.9, 0.9, 0, 0, 0)
	shapeHorns = Curls(1.2, 0, 1.5, 1.5, 0)
	shapeThree = Curls(0, 0, 0, 1.5, 1.5)
	shapeMid   = Curls(0.2, 0, 0.9, 0, 0)
	shapeFlatO = Curls(1.0, 1.1, 1.1, 1.1, 1.1)
)

// g is shorthand for a catalog entry.
func g(w WristFunc, f FingerFunc) Gesture {
	return Gesture{Wrist: w, Fingers: f}
}

// catalog maps vocabulary keywords to gestures. Keywords are matched
// case-sensitively, so entries are uppercase gloss.
var catalog = map[string]Gesture{
	// Greetings and courtesy
	"HELLO":     g(wave(3, 0.5), shape(ShapeOpen)),
	"HI":        g(wave(4, 0.4), shape(ShapeOpen)),
	"BYE":       g(tilted(nod(5, 0.3), -0.3, 0, 0), clench(ShapeOpen, shapeBent, 5)),
	"GOODBYE":   g(wave(3.5, 0.6), clench(ShapeOpen, shapeBent, 3.5)),
	"WELCOME":   g(swing(2, 0.5), shape(shapeFlat)),
	"PLEASE":    g(circle(3, 0.3), shape(shapeFlat)),
	"THANK-YOU": g(push(2, 0.6), shape(shapeFlat)),
	"THANKS":    g(push(2.5, 0.5), shape(shapeFlat)),
	"SORRY":     g(circle(3, 0.25), shape(ShapeFist)),
	"EXCUSE":    g(push(4, 0.3), shape(shapeBent)),
	"YES":       g(nod(6, 0.4), shape(ShapeFist)),
	"NO":        g(tap(6, 0.3), letter('n')),
	"OK":        g(shake(3, 0.2), letter('k')),
	"NICE":      g(push(3, 0.4), shape(shapeFlat)),
	"MEET":      g(tilted(push(2.5, 0.4), 0, 0.2, 0), shape(ShapePoint)),
	"GOOD":      g(push(2, 0.5), shape(shapeFlat)),
	"BAD":       g(tilted(push(2, 0.5), 0, 0, 1.2), shape(shapeFlat)),
	"MORNING":   g(tilted(push(1.5, 0.5), -0.5, 0, 0), shape(shapeFlat)),
	"AFTERNOON": g(tilted(nod(2, 0.2), 0.3, 0, 0), shape(shapeFlat)),
	"EVENING":   g(tilted(nod(2, 0.2), 0.6, 0, 0), shape(shapeBent)),
	"NIGHT":     g(tilted(tap(2, 0.3), 0.8, 0, 0), shape(shapeBent)),
	"NAME":      g(tap(5, 0.3), shape(shapeH)),
	"WHAT-UP":   g(push(3, 0.4), shape(shapeMid)),

	// Pronouns
	"I":        g(still(0.4, 0, 0), letter('i')),
	"ME":       g(tilted(tap(4, 0.2), 0.6, 0, 0), shape(ShapePoint)),
	"MY":       g(tilted(tap(3, 0.2), 0.6, 0, 0), shape(shapeFlat)),
	"MINE":     g(tilted(tap(2.5, 0.25), 0.6, 0, 0), shape(shapeFlat)),
	"MYSELF":   g(tilted(tap(3, 0.2), 0.4, 0, 0), shape(ShapeThumbsUp)),
	"YOU":      g(tilted(push(3, 0.3), -0.3, 0, 0), shape(ShapePoint)),
	"YOUR":     g(tilted(push(3, 0.3), -0.3, 0, 0), shape(shapeFlat)),
	"YOURSELF": g(tilted(push(3, 0.3), -0.2, 0, 0), shape(ShapeThumbsUp)),
	"HE":       g(still(-0.2, 0.5, 0), shape(ShapePoint)),
	"SHE":      g(still(-0.2, 0.6, 0.1), shape(ShapePoint)),
	"IT":       g(still(-0.3, 0.3, 0), shape(ShapePoint)),
	"HIS":      g(still(-0.2, 0.5, 0), shape(shapeFlat)),
	"HER":      g(still(-0.2, 0.6, 0.1), shape(shapeFlat)),
	"WE":       g(swing(2, 0.5), shape(ShapePoint)),
	"US":       g(swing(2, 0.4), letter('u')),
	"OUR":      g(swing(2, 0.45), shape(shapeC)),
	"THEY":     g(tilted(swing(2, 0.6), -0.2, 0.3, 0), shape(ShapePoint)),
	"THEM":     g(tilted(swing(2, 0.6), -0.2, 0.3, 0), shape(ShapePoint)),
	"THEIR":    g(tilted(swing(2, 0.6), -0.2, 0.3, 0), shape(shapeFlat)),

	// Questions
	"WHAT":      g(shake(4, 0.4), shape(ShapeOpen)),
	"WHERE":     g(shake(6, 0.4), shape(ShapePoint)),
	"WHEN":      g(circle(4, 0.3), shape(ShapePoint)),
	"WHO":       g(circle(6, 0.15), shape(shapeL)),
	"WHY":       g(tilted(push(2, 0.4), 0.3, 0, 0), shape(shapeY)),
	"HOW":       g(twist(3, 0.8), shape(shapeBent)),
	"WHICH":     g(nod(3, 0.3), shape(ShapeThumbsUp)),
	"HOW-MUCH":  g(nod(2, 0.3), clench(ShapeFist, ShapeOpen, 2)),
	"HOW-MANY":  g(nod(2.5, 0.3), clench(ShapeFist, ShapeOpen, 2.5)),
	"QUESTION":  g(tilted(push(2, 0.5), 0, 0, 0.3), shape(shapeX)),
	"WHAT-FOR":  g(tap(4, 0.3), shape(ShapePoint)),
	"HOW-OLD":   g(nod(3, 0.3), clench(ShapeOpen, ShapeFist, 3)),
	"WHERE-ARE": g(shake(5, 0.35), shape(ShapePoint)),

	// Verbs
	"GO":         g(push(2, 0.7), shape(ShapePoint)),
	"COME":       g(tilted(push(2, -0.7), 0, 0, 0.2), shape(ShapePoint)),
	"EAT":        g(tilted(tap(5, 0.3), 0.5, 0, 0), shape(shapeO)),
	"DRINK":      g(tilted(push(2, -0.6), 0.2, 0, 0), shape(shapeC)),
	"SLEEP":      g(tilted(nod(1.5, 0.2), 0.5, 0, 0), clench(ShapeOpen, shapePinch, 1.5)),
	"WORK":       g(tap(5, 0.4), letter('s')),
	"PLAY":       g(twist(5, 0.6), shape(shapeY)),
	"READ":       g(nod(3, 0.3), shape(shapeV)),
	"WRITE":      g(shake(6, 0.15), shape(shapePinch)),
	"TYPE":       g(tilted(nod(8, 0.05), 0.4, 0, 0), keyboard()),
	"SEE":        g(tilted(push(2, 0.4), 0.2, 0, 0), shape(shapeV)),
	"LOOK":       g(tilted(push(2, 0.5), 0.1, 0, 0), shape(shapeV)),
	"WATCH":      g(tilted(shake(2, 0.3), 0.1, 0, 0), shape(shapeV)),
	"HEAR":       g(tilted(tap(3, 0.2), 0, 0.8, 0), shape(ShapePoint)),
	"LISTEN":     g(tilted(tap(2, 0.2), 0, 0.8, 0), shape(shapeBent)),
	"SPEAK":      g(tilted(push(3, 0.3), 0.3, 0, 0), clench(ShapeFist, ShapeOpen, 3)),
	"TALK":       g(tilted(push(4, 0.3), 0.3, 0, 0), shape(ShapePoint)),
	"SAY":        g(tilted(push(3, 0.4), 0.2, 0, 0), shape(ShapePoint)),
	"TELL":       g(tilted(push(2.5, 0.6), 0.2, 0, 0), shape(ShapePoint)),
	"ASK":        g(push(3, 0.5), clench(ShapePoint, shapeX, 3)),
	"ANSWER":     g(push(2, 0.6), shape(ShapePoint)),
	"KNOW":       g(tilted(tap(4, 0.2), 0.5, 0.3, 0), shape(shapeFlat)),
	"THINK":      g(tilted(circle(3, 0.1), 0.5, 0.3, 0), shape(ShapePoint)),
	"UNDERSTAND": g(tilted(nod(3, 0.15), 0.5, 0.3, 0), clench(ShapeFist, ShapePoint, 3)),
	"LEARN":      g(tilted(push(2, -0.5), 0.4, 0, 0), clench(ShapeOpen, shapeO, 2)),
	"TEACH":      g(push(3, 0.5), shape(shapeO)),
	"STUDY":      g(tilted(nod(5, 0.1), 0.2, 0, 0), wiggle(ShapeOpen, 8, 0.3)),
	"HELP":       g(tilted(push(2, -0.5), -0.3, 0, 0), shape(ShapeThumbsUp)),
	"WANT":       g(tilted(push(2, -0.5), 0, 0, 0), shape(shapeClaw)),
	"NEED":       g(nod(5, 0.4), shape(shapeX)),
	"LIKE":       g(tilted(push(2, 0.5), 0.3, 0, 0), clench(ShapeOpen, shapeMid, 2)),
	"LOVE":       g(tilted(nod(1.5, 0.1), 0.6, 0, 0.5), shape(ShapeFist)),
	"HATE":       g(push(4, 0.6), shape(shapeMid)),
	"HAVE":       g(tilted(tap(3, 0.3), 0.6, 0, 0), shape(shapeBent)),
	"GIVE":       g(push(2, 0.7), shape(shapeO)),
	"TAKE":       g(tilted(push(2, -0.6), 0, 0, 0), clench(ShapeOpen, ShapeFist, 2)),
	"MAKE":       g(twist(5, 0.5), shape(ShapeFist)),
	"DO":         g(shake(5, 0.3), letter('c')),
	"BUY":        g(push(2.5, 0.5), shape(shapeO)),
	"SELL":       g(twist(4, 0.5), shape(shapePinch)),
	"PAY":        g(push(3, 0.6), shape(ShapePoint)),
	"OPEN":       g(twist(2, 0.6), clench(ShapeFist, ShapeOpen, 2)),
	"CLOSE":      g(twist(2, -0.6), clench(ShapeOpen, ShapeFist, 2)),
	"START":      g(twist(3, 0.5), shape(ShapePoint)),
	"STOP":       g(tilted(tap(3, 0.6), -0.3, 0, 0), shape(shapeFlat)),
	"FINISH":     g(twist(6, 0.7), shape(ShapeOpen)),
	"WAIT":       g(tilted(nod(1, 0.05), -0.2, 0, 0), wiggle(ShapeOpen, 10, 0.25)),
	"SIT":        g(tap(3, 0.3), shape(shapeH)),
	"STAND":      g(tilted(tap(2, 0.2), 1.2, 0, 0), shape(shapeV)),
	"WALK":       g(nod(5, 0.4), shape(shapeFlat)),
	"RUN":        g(nod(9, 0.3), shape(shapeL)),
	"JUMP":       g(bounce(6, 0.6), shape(shapeV)),
	"DANCE":      g(shake(6, 0.5), shape(shapeV)),
	"SING":       g(swing(2, 0.6), shape(shapeFlat)),
	"SWIM":       g(swing(3, 0.5), shape(shapeFlat)),
	"DRIVE":      g(circle(2, 0.4), shape(ShapeFist)),
	"FLY":        g(tilted(swing(2, 0.3), 0, 0, 0.3), shape(shapeILY)),
	"CALL":       g(tilted(tap(3, 0.2), 0, 0.6, 0), shape(shapeY)),
	"SEND":       g(push(3, 0.7), clench(shapeBent, ShapeOpen, 3)),
	"BRING":      g(tilted(push(2, -0.6), 0, 0.2, 0), shape(shapeFlat)),
	"FIND":       g(tilted(push(2, -0.4), 0.3, 0, 0), shape(shapeF)),
	"LOSE":       g(push(2, 0.5), clench(shapePinch, ShapeOpen, 2)),
	"WIN":        g(circle(4, 0.4), shape(ShapeFist)),
	"TRY":        g(push(2.5, 0.5), letter('t')),
	"USE":        g(circle(4, 0.2), letter('u')),
	"WASH":       g(circle(5, 0.25), shape(ShapeFist)),
	"COOK":       g(twist(4, 1.0), shape(shapeFlat)),
	"CLEAN":      g(push(4, 0.4), shape(shapeFlat)),
	"LIVE":       g(tilted(push(1.5, -0.5), 0.2, 0, 0), shape(shapeL)),
	"DIE":        g(twist(1.5, 1.4), shape(shapeFlat)),
	"REMEMBER":   g(tilted(push(2, 0.5), 0.5, 0.3, 0), shape(ShapeThumbsUp)),
	"FORGET":     g(tilted(shake(2, 0.5), 0.5, 0.3, 0), clench(ShapeOpen, letterCurls('a'), 2)),
	"FEEL":       g(tilted(nod(2, 0.3), 0.5, 0, 0), shape(shapeMid)),
	"BELIEVE":    g(tilted(push(2, -0.4), 0.4, 0, 0), clench(ShapePoint, shapeC, 2)),
	"CHANGE":     g(twist(3, 1.0), shape(shapeX)),
	"MOVE":       g(swing(2, 0.6), shape(shapeO)),
	"SHOW":       g(push(2, 0.5), shape(ShapePoint)),
	"CAN":        g(nod(4, 0.5), shape(ShapeFist)),
	"CANNOT":     g(tilted(push(4, 0.6), 0, 0, 0.3), shape(ShapePoint)),
	"WILL":       g(push(2, 0.5), shape(shapeFlat)),
	"MUST":       g(nod(5, 0.5), shape(shapeX)),
	"SHOULD":     g(nod(4, 0.4), shape(shapeX)),
	"AGREE":      g(tilted(nod(3, 0.4), 0.3, 0, 0), shape(ShapePoint)),
	"DISAGREE":   g(tilted(shake(3, 0.5), 0.3, 0, 0), shape(ShapePoint)),
	"GET":        g(tilted(push(2, -0.5), 0, 0, 0), clench(ShapeOpen, ShapeFist, 2)),
	"PUT":        g(push(2, 0.4), shape(shapeO)),
	"BREAK":      g(twist(4, 0.8), shape(ShapeFist)),
	"FIX":        g(twist(5, 0.4), shape(shapePinch)),
	"CARRY":      g(swing(2, 0.4), shape(shapeBent)),
	"PRACTICE":   g(push(6, 0.3), letter('a')),
	"TOUCH":      g(tap(4, 0.3), shape(shapeMid)),
	"BUILD":      g(bounce(3, 0.4), shape(shapeFlat)),

	// Emotions
	"HAPPY":     g(tilted(circle(4, 0.3), 0.4, 0, 0), shape(shapeFlat)),
	"SAD":       g(tilted(push(1.5, 0.6), 0.4, 0, 0), wiggle(ShapeOpen, 2, 0.1)),
	"ANGRY":     g(tilted(push(3, -0.4), 0.5, 0, 0), shape(shapeClaw)),
	"MAD":       g(tilted(push(3, -0.3), 0.5, 0, 0), shape(shapeClaw)),
	"SCARED":    g(tilted(shake(12, 0.15), 0.3, 0, 0), clench(ShapeFist, ShapeOpen, 6)),
	"AFRAID":    g(tilted(shake(10, 0.15), 0.3, 0, 0), shape(ShapeOpen)),
	"EXCITED":   g(tilted(circle(6, 0.3), 0.4, 0, 0), shape(shapeMid)),
	"TIRED":     g(tilted(twist(1.5, 0.4), 0.6, 0, 0), shape(shapeBent)),
	"BORED":     g(tilted(twist(2, 0.5), 0.3, 0.3, 0), shape(ShapePoint)),
	"SURPRISED": g(tilted(bounce(4, 0.3), 0.3, 0, 0), clench(shapeFlatO, shapeL, 4)),
	"WORRIED":   g(circle(3, 0.3), shape(shapeBent)),
	"CALM":      g(tilted(nod(1, 0.2), -0.2, 0, 0), shape(shapeFlat)),
	"PROUD":     g(tilted(push(1.5, -0.4), 0.5, 0, 0), shape(ShapeThumbsUp)),
	"SHY":       g(tilted(twist(2, 0.3), 0.5, 0.4, 0), letter('a')),
	"LONELY":    g(tilted(nod(1.5, 0.3), 0.5, 0, 0), shape(ShapePoint)),
	"CONFUSED":  g(tilted(circle(5, 0.3), 0.5, 0.3, 0), shape(shapeClaw)),
	"HURT":      g(twist(4, 0.5), shape(ShapePoint)),
	"PAIN":      g(twist(5, 0.5), shape(ShapePoint)),
	"SICK":      g(tilted(tap(3, 0.2), 0.5, 0, 0), shape(shapeMid)),
	"FINE":      g(tilted(tap(3, 0.3), 0.5, 0, 0), shape(ShapeOpen)),
	"GREAT":     g(push(3, 0.5), shape(ShapeOpen)),
	"FUNNY":     g(tilted(nod(6, 0.3), 0.5, 0, 0), shape(shapeH)),
	"LAUGH":     g(tilted(nod(7, 0.25), 0.4, 0, 0), shape(shapeL)),
	"CRY":       g(tilted(nod(4, 0.4), 0.5, 0, 0), shape(ShapePoint)),
	"SMILE":     g(tilted(swing(2, 0.3), 0.5, 0, 0), shape(shapeL)),
	"JEALOUS":   g(tilted(twist(3, 0.5), 0.5, 0.3, 0), letter('j')),
	"NERVOUS":   g(shake(14, 0.12), shape(ShapeOpen)),

	// Family and people
	"FAMILY":      g(circle(2, 0.5), letter('f')),
	"MOTHER":      g(tilted(tap(4, 0.3), 0.5, 0, 0), shape(ShapeOpen)),
	"MOM":         g(tilted(tap(5, 0.3), 0.5, 0, 0), shape(ShapeOpen)),
	"FATHER":      g(tilted(tap(4, 0.3), 0.8, 0, 0), shape(ShapeOpen)),
	"DAD":         g(tilted(tap(5, 0.3), 0.8, 0, 0), shape(ShapeOpen)),
	"SISTER":      g(tilted(tap(3, 0.4), 0.4, 0, 0), shape(shapeL)),
	"BROTHER":     g(tilted(tap(3, 0.4), 0.7, 0, 0), shape(shapeL)),
	"BABY":        g(swing(2, 0.6), shape(shapeFlat)),
	"CHILD":       g(tilted(bounce(3, 0.3), -0.5, 0, 0), shape(shapeFlat)),
	"CHILDREN":    g(tilted(swing(3, 0.5), -0.5, 0, 0), shape(shapeFlat)),
	"SON":         g(tilted(push(2, 0.5), 0.8, 0, 0), shape(shapeFlat)),
	"DAUGHTER":    g(tilted(push(2, 0.5), 0.4, 0, 0), shape(shapeFlat)),
	"GRANDMOTHER": g(tilted(push(3, 0.5), 0.5, 0, 0), shape(ShapeOpen)),
	"GRANDFATHER": g(tilted(push(3, 0.5), 0.8, 0, 0), shape(ShapeOpen)),
	"AUNT":        g(tilted(shake(5, 0.3), 0.4, 0, 0), letter('a')),
	"UNCLE":       g(tilted(twist(5, 0.3), 0.8, 0, 0), letter('u')),
	"COUSIN":      g(tilted(shake(5, 0.3), 0.6, 0, 0), letter('c')),
	"FRIEND":      g(twist(3, 0.8), shape(shapeX)),
	"HUSBAND":     g(tilted(push(2, 0.4), 0.8, 0, 0), shape(shapeC)),
	"WIFE":        g(tilted(push(2, 0.4), 0.4, 0, 0), shape(shapeC)),
	"BOY":         g(tilted(tap(4, 0.3), 0.8, 0, 0), shape(shapeBent)),
	"GIRL":        g(tilted(push(3, 0.3), 0.4, 0, 0), shape(ShapeThumbsUp)),
	"MAN":         g(tilted(push(2, 0.5), 0.8, 0, 0), shape(ShapeOpen)),
	"WOMAN":       g(tilted(push(2, 0.5), 0.4, 0, 0), shape(ShapeOpen)),
	"PEOPLE":      g(circle(4, 0.3), letter('p')),
	"PERSON":      g(nod(1.5, 0.3), letter('p')),
	"TEACHER":     g(push(3, 0.5), shape(shapeO)),
	"STUDENT":     g(tilted(push(2, -0.5), 0.3, 0, 0), clench(ShapeOpen, shapeO, 2)),
	"DOCTOR":      g(tap(4, 0.3), letter('d')),
	"NURSE":       g(tap(4, 0.3), letter('n')),
	"POLICE":      g(tilted(tap(3, 0.3), 0.5, 0, 0), shape(shapeC)),

	// Places and directions
	"HOME":       g(tilted(tap(3, 0.3), 0.5, 0.4, 0), shape(shapeO)),
	"HOUSE":      g(swing(1.5, 0.5), shape(shapeFlat)),
	"SCHOOL":     g(tap(5, 0.4), shape(shapeFlat)),
	"CHURCH":     g(tap(3, 0.3), letter('c')),
	"HOSPITAL":   g(tilted(circle(3, 0.2), 0, 0.5, 0), shape(shapeH)),
	"STORE":      g(push(3, 0.4), shape(shapePinch)),
	"SHOP":       g(push(3, 0.4), shape(shapeO)),
	"RESTAURANT": g(tilted(tap(3, 0.3), 0.5, 0, 0), letter('r')),
	"OFFICE":     g(swing(2, 0.3), letter('o')),
	"CITY":       g(twist(4, 0.4), shape(shapeFlat)),
	"COUNTRY":    g(circle(3, 0.3), letter('y')),
	"PARK":       g(circle(2, 0.3), letter('p')),
	"BATHROOM":   g(shake(6, 0.3), letter('t')),
	"KITCHEN":    g(twist(3, 0.6), letter('k')),
	"ROOM":       g(swing(2, 0.5), shape(shapeFlat)),
	"LIBRARY":    g(circle(3, 0.3), letter('l')),
	"AIRPORT":    g(push(3, 0.5), shape(shapeILY)),
	"HERE":       g(circle(3, 0.2), shape(shapeFlat)),
	"THERE":      g(tilted(push(2, 0.4), -0.2, 0.4, 0), shape(ShapePoint)),
	"OUTSIDE":    g(tilted(push(2, -0.5), 0, 0, 0), clench(ShapeOpen, shapeO, 2)),
	"INSIDE":     g(tap(4, 0.4), shape(shapeO)),
	"UP":         g(tilted(bounce(3, 0.3), -0.8, 0, 0), shape(ShapePoint)),
	"DOWN":       g(tilted(bounce(3, 0.3), 0.8, 0, 0), shape(ShapePoint)),
	"LEFT":       g(tilted(shake(3, 0.3), 0, -0.5, 0), letter('l')),
	"RIGHT":      g(tilted(shake(3, 0.3), 0, 0.5, 0), letter('r')),
	"NEAR":       g(tilted(push(3, -0.3), 0, 0, 0), shape(shapeBent)),
	"FAR":        g(push(1.5, 0.8), letter('a')),

	// Objects
	"BOOK":     g(twist(2, 1.0), shape(shapeFlat)),
	"PHONE":    g(tilted(still(0, 0, 0), 0.3, 0.8, 0), shape(shapeY)),
	"COMPUTER": g(circle(3, 0.3), letter('c')),
	"CAR":      g(circle(2, 0.4), letter('s')),
	"BUS":      g(push(2, 0.5), letter('b')),
	"TRAIN":    g(shake(5, 0.3), shape(shapeH)),
	"PLANE":    g(tilted(push(2, 0.6), 0, 0, 0.3), shape(shapeILY)),
	"AIRPLANE": g(tilted(push(2, 0.6), 0, 0, 0.3), shape(shapeILY)),
	"BIKE":     g(circle(5, 0.4), letter('s')),
	"MONEY":    g(tap(4, 0.4), shape(shapeO)),
	"FOOD":     g(tilted(tap(5, 0.3), 0.5, 0, 0), shape(shapeO)),
	"WATER":    g(tilted(tap(4, 0.2), 0.5, 0, 0), letter('w')),
	"MILK":     g(tilted(nod(1, 0.05), 0, 0, 0), clench(shapeC, ShapeFist, 5)),
	"COFFEE":   g(circle(4, 0.3), letter('s')),
	"TEA":      g(circle(5, 0.2), letter('f')),
	"BREAD":    g(push(4, 0.3), shape(shapeBent)),
	"APPLE":    g(twist(4, 0.4), shape(shapeX)),
	"PIZZA":    g(shake(4, 0.3), letter('z')),
	"CAKE":     g(push(2, 0.4), shape(shapeClaw)),
	"TABLE":    g(tap(4, 0.3), shape(shapeFlat)),
	"CHAIR":    g(tap(4, 0.3), shape(shapeH)),
	"BED":      g(tilted(still(0, 0, 0), 0.3, 0, 1.0), shape(shapeFlat)),
	"DOOR":     g(twist(2, 0.8), shape(shapeFlat)),
	"WINDOW":   g(bounce(3, 0.4), shape(shapeFlat)),
	"PAPER":    g(push(4, 0.3), shape(shapeFlat)),
	"PEN":      g(shake(6, 0.15), shape(shapePinch)),
	"BALL":     g(circle(3, 0.3), shape(shapeClaw)),
	"SHIRT":    g(tap(4, 0.2), shape(shapeF)),
	"SHOES":    g(tap(5, 0.3), letter('s')),
	"HAT":      g(tilted(tap(4, 0.3), 0.9, 0, 0), shape(shapeFlat)),
	"KEY":      g(twist(5, 0.6), shape(shapeX)),
	"BAG":      g(bounce(3, 0.3), shape(ShapeFist)),
	"CLOCK":    g(circle(2, 0.4), shape(shapeC)),
	"TV":       g(shake(3, 0.3), letter('t')),
	"MOVIE":    g(shake(5, 0.3), shape(ShapeOpen)),
	"MUSIC":    g(swing(2, 0.6), shape(shapeFlat)),
	"GAME":     g(tap(5, 0.3), letter('a')),
	"GIFT":     g(push(2, 0.5), shape(shapeX)),
	"PICTURE":  g(tilted(push(2, 0.4), 0.3, 0, 0), shape(shapeC)),

	// Animals
	"DOG":       g(tilted(tap(5, 0.3), 0.6, 0, 0), clench(shapeMid, shapeF, 5)),
	"CAT":       g(tilted(shake(4, 0.3), 0.4, 0.3, 0), shape(shapeF)),
	"BIRD":      g(tilted(nod(1, 0.05), 0.4, 0, 0), clench(shapeL, shapeFlatO, 6)),
	"FISH":      g(shake(6, 0.4), shape(shapeFlat)),
	"HORSE":     g(tilted(nod(5, 0.3), 0.5, 0.5, 0), shape(shapeH)),
	"COW":       g(tilted(twist(3, 0.4), 0.5, 0.5, 0), shape(shapeY)),
	"PIG":       g(tilted(tap(4, 0.3), 0.8, 0, 0), shape(shapeFlat)),
	"MOUSE":     g(tilted(shake(8, 0.2), 0.5, 0, 0), shape(ShapePoint)),
	"LION":      g(tilted(push(2, 0.4), 0.6, 0, 0), shape(shapeClaw)),
	"BEAR":      g(tilted(tap(4, 0.3), 0.6, 0, 0), shape(shapeClaw)),
	"MONKEY":    g(tilted(tap(6, 0.4), 0.3, 0.5, 0), shape(shapeBent)),
	"ELEPHANT":  g(tilted(swing(2, 0.5), 0.6, 0, 0), shape(shapeFlat)),
	"RABBIT":    g(tilted(nod(5, 0.3), 0.6, 0, 0), shape(shapeH)),
	"SNAKE":     g(circle(5, 0.4), shape(shapeV)),
	"ANIMAL":    g(tilted(nod(4, 0.3), 0.5, 0, 0), shape(shapeBent)),
	"BUTTERFLY": g(tilted(bounce(4, 0.3), 0.2, 0, 0), wiggle(ShapeOpen, 6, 0.3)),

	// Time
	"TIME":      g(tap(4, 0.3), shape(shapeX)),
	"NOW":       g(tilted(tap(3, 0.4), 0.3, 0, 0), shape(shapeY)),
	"TODAY":     g(tilted(tap(2.5, 0.4), 0.3, 0, 0), shape(shapeY)),
	"TOMORROW":  g(tilted(push(2, 0.4), 0.5, 0.3, 0), shape(ShapeThumbsUp)),
	"YESTERDAY": g(tilted(push(2, -0.4), 0.5, 0.3, 0), shape(ShapeThumbsUp)),
	"WEEK":      g(push(2.5, 0.5), letter('1')),
	"MONTH":     g(nod(3, 0.4), letter('1')),
	"YEAR":      g(circle(3, 0.4), shape(ShapeFist)),
	"DAY":       g(twist(1.5, 0.8), letter('1')),
	"HOUR":      g(twist(2, 1.0), letter('1')),
	"MINUTE":    g(twist(3, 0.3), letter('1')),
	"LATER":     g(twist(3, 0.5), shape(shapeL)),
	"BEFORE":    g(tilted(push(2, -0.5), 0, 0, 0), shape(shapeBent)),
	"AFTER":     g(push(2, 0.5), shape(shapeBent)),
	"ALWAYS":    g(circle(5, 0.3), shape(ShapePoint)),
	"NEVER":     g(tilted(swing(2, 0.5), 0, 0, 0.3), shape(shapeFlat)),
	"SOMETIMES": g(tap(2, 0.4), shape(ShapePoint)),
	"AGAIN":     g(tilted(tap(3, 0.4), 0.3, 0, 0), shape(shapeBent)),
	"SOON":      g(tilted(tap(4, 0.2), 0.6, 0, 0), letter('f')),
	"LATE":      g(tilted(shake(4, 0.3), 0.5, 0, 0), shape(shapeFlat)),
	"EARLY":     g(push(3, 0.3), shape(shapeMid)),
	"FUTURE":    g(tilted(push(2, 0.6), 0.4, 0, 0), shape(shapeFlat)),
	"PAST":      g(tilted(push(2, -0.6), 0.4, 0, 0), shape(shapeFlat)),
	"FIRST":     g(tap(4, 0.3), shape(ShapeThumbsUp)),
	"LAST":      g(tilted(push(3, 0.5), 0, 0, 0.2), letter('i')),

	// Colors
	"COLOR":  g(tilted(nod(1, 0.05), 0.3, 0, 0), wiggle(ShapeOpen, 8, 0.3)),
	"RED":    g(tilted(push(4, 0.3), 0.6, 0, 0), shape(ShapePoint)),
	"BLUE":   g(twist(5, 0.5), letter('b')),
	"GREEN":  g(twist(5, 0.5), letter('g')),
	"YELLOW": g(twist(5, 0.5), letter('y')),
	"ORANGE": g(tilted(nod(1, 0.05), 0.5, 0, 0), clench(shapeC, ShapeFist, 5)),
	"PURPLE": g(twist(5, 0.5), letter('p')),
	"PINK":   g(tilted(push(4, 0.3), 0.6, 0, 0), letter('p')),
	"BLACK":  g(tilted(swing(2, 0.4), 0.8, 0, 0), shape(ShapePoint)),
	"WHITE":  g(tilted(push(2, -0.4), 0.4, 0, 0), clench(ShapeOpen, shapePinch, 2)),
	"BROWN":  g(tilted(push(3, 0.3), 0.6, 0.3, 0), letter('b')),
	"GRAY":   g(shake(4, 0.4), shape(ShapeOpen)),

	// Qualities and quantities
	"BIG":       g(swing(1.5, 0.7), shape(shapeL)),
	"SMALL":     g(tilted(push(4, 0.2), 0, 0, 1.5), shape(shapeFlat)),
	"HOT":       g(tilted(twist(3, 0.8), 0.5, 0, 0), shape(shapeClaw)),
	"COLD":      g(shake(14, 0.15), shape(ShapeFist)),
	"NEW":       g(swing(2, 0.4), shape(shapeBent)),
	"OLD":       g(tilted(push(2, 0.5), 0.6, 0, 0), clench(shapeC, ShapeFist, 2)),
	"YOUNG":     g(tilted(bounce(4, 0.3), 0.5, 0, 0), shape(shapeBent)),
	"BEAUTIFUL": g(tilted(circle(3, 0.4), 0.5, 0, 0), clench(ShapeOpen, shapePinch, 3)),
	"PRETTY":    g(tilted(circle(3, 0.35), 0.5, 0, 0), clench(ShapeOpen, shapePinch, 3)),
	"UGLY":      g(tilted(shake(3, 0.4), 0.5, 0, 0), shape(shapeX)),
	"FAST":      g(push(8, 0.5), shape(shapeL)),
	"SLOW":      g(push(1, 0.5), shape(shapeFlat)),
	"EASY":      g(tilted(bounce(4, 0.3), 0.3, 0, 0), shape(shapeBent)),
	"HARD":      g(tap(5, 0.5), shape(shapeV)),
	"DIFFERENT": g(swing(3, 0.5), shape(ShapePoint)),
	"SAME":      g(shake(4, 0.3), shape(ShapePoint)),
	"CORRECT":   g(tap(3, 0.3), shape(ShapePoint)),
	"WRONG":     g(tilted(tap(3, 0.3), 0.6, 0, 0), shape(shapeY)),
	"TRUE":      g(tilted(push(2, 0.4), 0.6, 0, 0), shape(ShapePoint)),
	"IMPORTANT": g(circle(3, 0.3), letter('f')),
	"READY":     g(shake(3, 0.4), letter('r')),
	"BUSY":      g(shake(6, 0.3), letter('b')),
	"FREE":      g(twist(3, 0.6), letter('f')),
	"FULL":      g(tilted(push(2, 0.4), 0.8, 0, 0), shape(shapeFlat)),
	"EMPTY":     g(tap(4, 0.3), shape(shapeMid)),
	"HUNGRY":    g(tilted(push(2, 0.4), 0.6, 0, 0), shape(shapeC)),
	"THIRSTY":   g(tilted(push(2, 0.4), 0.7, 0, 0), shape(ShapePoint)),
	"RICH":      g(tilted(push(2, -0.5), 0, 0, 0), clench(ShapeFist, shapeClaw, 2)),
	"POOR":      g(tilted(nod(3, 0.3), 0.4, 0, 0), clench(ShapeOpen, shapePinch, 3)),
	"STRONG":    g(tilted(push(2, -0.4), 0.6, 0, 0), shape(ShapeFist)),
	"WEAK":      g(tilted(nod(4, 0.2), 0.3, 0, 0), shape(shapeBent)),
	"DIRTY":     g(tilted(nod(1, 0.05), 0.6, 0, 0), wiggle(ShapeOpen, 8, 0.3)),
	"QUIET":     g(tilted(push(1.5, 0.4), -0.3, 0, 0), shape(shapeFlat)),
	"LOUD":      g(tilted(shake(8, 0.3), 0.4, 0.6, 0), shape(ShapePoint)),
	"MORE":      g(tap(4, 0.3), shape(shapeO)),
	"LESS":      g(tilted(push(2, 0.3), 0.8, 0, 0), shape(shapeFlat)),
	"MANY":      g(tilted(nod(1, 0.05), -0.2, 0, 0), clench(ShapeFist, ShapeOpen, 4)),
	"FEW":       g(twist(2, 0.5), shape(ShapeThumbsUp)),
	"ALL":       g(circle(2, 0.5), shape(shapeFlat)),
	"SOME":      g(push(2, 0.3), shape(shapeBent)),
	"NOTHING":   g(tilted(push(3, 0.4), 0.4, 0, 0), shape(shapeO)),
	"BEST":      g(tilted(push(2, -0.6), 0.4, 0, 0), shape(shapeFlat)),
	"BETTER":    g(tilted(push(2.5, -0.5), 0.4, 0, 0), shape(shapeFlat)),
	"WORSE":     g(twist(3, 0.6), shape(shapeV)),
	"SICK-OF":   g(tilted(push(3, 0.3), 0.6, 0, 0), shape(shapeMid)),

	// Function words and misc
	"AND":        g(push(2, 0.5), clench(ShapeOpen, shapePinch, 2)),
	"OR":         g(tap(4, 0.3), shape(shapeL)),
	"BUT":        g(swing(3, 0.3), shape(ShapePoint)),
	"WITH":       g(tap(3, 0.3), shape(ShapeFist)),
	"WITHOUT":    g(push(2, 0.4), clench(ShapeFist, ShapeOpen, 2)),
	"NOT":        g(tilted(push(3, 0.4), 0.6, 0, 0), shape(ShapeThumbsUp)),
	"MAYBE":      g(nod(3, 0.4), shape(shapeFlat)),
	"ALSO":       g(shake(3, 0.4), shape(ShapePoint)),
	"VERY":       g(swing(2, 0.4), letter('v')),
	"IF":         g(nod(3, 0.3), letter('f')),
	"BECAUSE":    g(tilted(push(2, 0.4), 0.6, 0, 0), shape(shapeL)),
	"WEATHER":    g(tilted(nod(1, 0.05), 0.2, 0, 0), wiggle(letterCurls('w'), 6, 0.2)),
	"RAIN":       g(tilted(bounce(4, 0.4), 0.6, 0, 0), wiggle(shapeClaw, 9, 0.2)),
	"SNOW":       g(tilted(bounce(2, 0.4), 0.6, 0, 0), wiggle(ShapeOpen, 6, 0.3)),
	"SUN":        g(tilted(push(2, 0.4), -0.8, 0, 0), clench(shapePinch, ShapeOpen, 2)),
	"WIND":       g(swing(3, 0.7), shape(ShapeOpen)),
	"DEAF":       g(tilted(tap(3, 0.3), 0.5, 0.6, 0), shape(ShapePoint)),
	"HEARING":    g(tilted(circle(4, 0.2), 0.5, 0, 0), shape(ShapePoint)),
	"SIGN":       g(circle(4, 0.5), shape(ShapePoint)),
	"LANGUAGE":   g(swing(2, 0.5), letter('l')),
	"ENGLISH":    g(tilted(push(3, -0.3), 0.3, 0, 0), shape(shapeFlat)),
	"WORLD":      g(circle(2, 0.5), letter('w')),
	"I-LOVE-YOU": g(tilted(shake(2, 0.2), -0.2, 0, 0), shape(shapeILY)),
	"PARTY":      g(swing(4, 0.6), shape(shapeY)),
	"BIRTHDAY":   g(tilted(tap(3, 0.3), 0.5, 0, 0), shape(shapeMid)),
	"HOLIDAY":    g(tilted(tap(4, 0.3), 0.3, 0.5, 0), shape(ShapeOpen)),
	"CHRISTMAS":  g(swing(2, 0.6), letter('c')),
	"VACATION":   g(tilted(tap(4, 0.3), 0.3, 0.5, 0), shape(ShapeOpen)),
	"INTERNET":   g(twist(4, 0.5), shape(shapeMid)),
	"EMAIL":      g(push(3, 0.5), letter('e')),
	"ROCK":       g(nod(5, 0.4), shape(shapeHorns)),
	"THREE":      g(nod(2, 0.2), shape(shapeThree)),
	"NUMBER":     g(twist(4, 0.5), shape(shapeO)),
	"WORD":       g(tap(4, 0.3), shape(shapePinch)),
	"STORY":      g(twist(3, 0.5), clench(shapeF, ShapeOpen, 3)),
	"PROBLEM":    g(twist(3, 0.6), shape(shapeBent)),
	"IDEA":       g(tilted(push(2, -0.4), 0.5, 0, 0), letter('i')),
	"SECRET":     g(tilted(tap(4, 0.2), 0.3, 0, 0), letter('a')),
	"TRUST":      g(tilted(push(2, 0.4), 0, 0, 0), shape(ShapeFist)),
	"PEACE":      g(twist(2, 0.6), shape(shapeFlat)),
	"LOVE-IT":    g(tilted(nod(2, 0.2), 0.6, 0, 0.4), shape(ShapeFist)),
}

// letterCurls returns a fingerspelling handshape for use in gesture entries.
func letterCurls(ch rune) FingerCurls {
	c, _ := LookupPose(ch)
	return c
}

// LookupGesture returns the catalog gesture for a keyword.
func LookupGesture(keyword string) (Gesture, bool) {
	gesture, ok := catalog[keyword]
	return gesture, ok
}

// Keywords returns every catalog keyword in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(catalog))
	for w := range catalog {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
