package enums

type Swatch struct {
	Color
	Name string
}

var Primary = []Color{Red, Green, Blue}

func Describe(s Swatch) (Color, string) {
	if s.Color == Red {
		return s.Color.Next(), s.Name
	}
	return Swatch{Color: Blue}.Color, s.Name
}
