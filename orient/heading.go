package orient

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal directions, numbered clockwise so that
// turning is arithmetic modulo 4.
type Heading uint8

const (
	// Up faces decreasing Y.
	Up Heading = iota
	// Right faces increasing X.
	Right
	// Down faces increasing Y.
	Down
	// Left faces decreasing X.
	Left
)

// deltas[h] is the unit step taken by a Move while facing h.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var headingNames = [4]string{"up", "right", "down", "left"}

var headingGlyphs = [4]string{"^", ">", "v", "<"}

// Headings returns all four headings in clockwise order starting at Up.
func Headings() []Heading {
	return []Heading{Up, Right, Down, Left}
}

// TurnRight rotates h by 90° clockwise. It is the inverse of TurnLeft.
func (h Heading) TurnRight() Heading {
	return (h&3 + 1) & 3
}

// TurnLeft rotates h by 90° counter-clockwise. It is the inverse of TurnRight.
func (h Heading) TurnLeft() Heading {
	return (h&3 + 3) & 3
}

// Delta returns the (dx, dy) unit step for h.
func (h Heading) Delta() (dx, dy int) {
	d := deltas[h&3]
	return d[0], d[1]
}

// Valid reports whether h is one of the four named headings.
func (h Heading) Valid() bool {
	return h <= Left
}

// Glyph returns the arrow used for h in text renderings: ^ > v <.
func (h Heading) Glyph() string {
	return headingGlyphs[h&3]
}

// String returns the lower-case heading name.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// ParseHeading accepts a heading name (case-insensitive), its first letter,
// or its arrow glyph.
func ParseHeading(s string) (Heading, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, h := range Headings() {
		if t == headingNames[h] || t == headingNames[h][:1] || t == headingGlyphs[h] {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}
