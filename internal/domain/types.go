package domain

// DefaultTypeColor is the badge colour used for unknown types.
const DefaultTypeColor = "#ccc"

// TypeColors maps creature types to badge colours.
var TypeColors = map[string]string{
	"normal":   "#aa9",
	"fire":     "#f42",
	"water":    "#39f",
	"electric": "#fc3",
	"grass":    "#7c5",
	"ice":      "#6cf",
	"fighting": "#b54",
	"poison":   "#a59",
	"ground":   "#db5",
	"flying":   "#89f",
	"psychic":  "#f59",
	"bug":      "#ab2",
	"rock":     "#ba6",
	"ghost":    "#66b",
	"dragon":   "#76e",
	"dark":     "#754",
	"steel":    "#aab",
	"fairy":    "#e9e",
}

// TypeColor returns the badge colour for a type, falling back to DefaultTypeColor.
func TypeColor(t string) string {
	if c, ok := TypeColors[t]; ok {
		return c
	}
	return DefaultTypeColor
}
