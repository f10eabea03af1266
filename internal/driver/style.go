package driver

// Shadow is a drop shadow under a stroked path.
type Shadow struct {
	Color   string
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Style describes how a ribbon path is stroked.
type Style struct {
	Color    string
	Width    float64
	LineCap  string
	LineJoin string
	Shadow   Shadow
}

func DefaultStyle() Style {
	return Style{
		Color:    "#c0392b",
		Width:    3,
		LineCap:  "round",
		LineJoin: "round",
		Shadow: Shadow{
			Color:   "rgba(0,0,0,0.2)",
			Blur:    3,
			OffsetX: 2,
			OffsetY: 2,
		},
	}
}
