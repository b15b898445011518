package renderer

// Options controls the printed page geometry. All lengths are in inches,
// matching what the DevTools printToPDF call expects.
type Options struct {
	PaperWidth      float64
	PaperHeight     float64
	MarginTop       float64
	MarginRight     float64
	MarginBottom    float64
	MarginLeft      float64
	Landscape       bool
	PrintBackground bool
}

// A4 returns portrait A4 with the narrow margins the transport documents use.
func A4() Options {
	return Options{
		PaperWidth:      8.27,
		PaperHeight:     11.7,
		MarginTop:       0.2,
		MarginRight:     0.2,
		MarginBottom:    0.2,
		MarginLeft:      0.2,
		PrintBackground: true,
	}
}

// withDefaults fills zero geometry with A4 so a partially filled Options
// still produces a printable page.
func (o Options) withDefaults() Options {
	def := A4()
	if o.PaperWidth == 0 {
		o.PaperWidth = def.PaperWidth
	}
	if o.PaperHeight == 0 {
		o.PaperHeight = def.PaperHeight
	}
	return o
}
