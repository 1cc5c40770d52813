package rating

// Colors carries the presentation pair shown next to a score.
type Colors struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}

// The app historically grew three slightly different copies of this table
// (hex values, utility class names, named shades). They are reconciled here:
// one threshold function, two presentation adapters.

var hexColors = map[Band]Colors{
	BandGreat: {Text: "#4ADE80", Background: "#ECFDF5"},
	BandGood:  {Text: "#22C55E", Background: "#F0FDF4"},
	BandOK:    {Text: "#FACC15", Background: "#FEFCE8"},
	BandFair:  {Text: "#FB923C", Background: "#FFF7ED"},
	BandPoor:  {Text: "#F87171", Background: "#FEF2F2"},
}

var cssClasses = map[Band]Colors{
	BandGreat: {Text: "text-emerald-400", Background: "bg-emerald-50"},
	BandGood:  {Text: "text-green-500", Background: "bg-green-50"},
	BandOK:    {Text: "text-yellow-400", Background: "bg-yellow-50"},
	BandFair:  {Text: "text-orange-400", Background: "bg-orange-50"},
	BandPoor:  {Text: "text-red-400", Background: "bg-red-50"},
}

// HexColors returns the canonical hex pair for a band.
func HexColors(band Band) Colors {
	if c, ok := hexColors[band]; ok {
		return c
	}
	return hexColors[BandPoor]
}

// CSSClasses returns the utility-class pair for a band.
func CSSClasses(band Band) Colors {
	if c, ok := cssClasses[band]; ok {
		return c
	}
	return cssClasses[BandPoor]
}

// Classification bundles everything a score card renders.
type Classification struct {
	Score float64 `json:"score"`
	Label Band    `json:"label"`
	Hex   Colors  `json:"hex"`
	CSS   Colors  `json:"css"`
}

// Describe classifies a score and resolves both presentation adapters.
func Describe(score float64) Classification {
	band := Classify(score)
	return Classification{
		Score: score,
		Label: band,
		Hex:   HexColors(band),
		CSS:   CSSClasses(band),
	}
}
