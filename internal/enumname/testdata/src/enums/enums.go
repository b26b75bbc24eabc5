package enums

type Color int // want `Enum 'Color' does not end with 'Enum'`

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) Next() Color {
	return (c + 1) % (Blue + 1)
}

type Palette []Color

type StatusEnum int

const (
	StatusEnumOK StatusEnum = iota
	StatusEnumFailed
)

type Mode string // want `Enum 'Mode' does not end with 'Enum'`

const ModeFast Mode = "fast"

type colorEnum uint8

const colorEnumBlack colorEnum = 0

// Counter has no constants, so it is not an enumeration.
type Counter int

type Ratio float64

const Half Ratio = 0.5

type Alias = int

const AliasOne Alias = 1

func paint(p Palette, c Color, m Mode) (Color, Mode) {
	if len(p) > 0 {
		c = p[0]
	}
	return c.Next(), m
}

var _ = paint
