package main

import "math"

// Shape constants. These are visual tuning values of the physical product; changing any of
// them changes the rendered silhouette.
const (
	BarThickness = 10.0
	thetaDegrees = 35.0
	Theta        = thetaDegrees * math.Pi / 180.0

	diagonalInset    = 0.2  // the diagonal bar's bottom-left corner sits this much above a full thickness
	scenePadding     = 10.0 // added below the lowest bar
	centerBarInset   = 20.0 // center bar stops this far above the scene bottom
	TopMargin        = 32.0 // reserved above the scene for label and icons
	labelOffset      = 7.0
	iconOffset       = 50.0
	iconBias         = 22.0 // icons sit above the text baseline
	IconSize         = 50.0
	bottomLineOffset = 2.0
	bottomLineHeight = 1.0
)

// Structure to hold calculated bounds
type bounds struct {
	minX, maxX, minY, maxY float64
	isSet                  bool
}

// Update bounds considering a point (x, y)
func (b *bounds) updatePoint(x, y float64) {
	if !b.isSet {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.isSet = true
	} else {
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
		b.minY = math.Min(b.minY, y)
		b.maxY = math.Max(b.maxY, y)
	}
}

// ParamIncrement is the travel distance along the spine between two bars. Scaling by
// 1/cos(theta) keeps the vertical gap at exactly 2*BarThickness.
func ParamIncrement() float64 {
	return (2 * BarThickness) / math.Cos(Theta)
}

// rotatePoint maps a travel distance s along the diagonal spine to a point.
func rotatePoint(s float64) Point {
	return Point{
		X: BarThickness*math.Cos(Theta) + s*math.Sin(Theta),
		Y: -BarThickness*math.Sin(Theta) + s*math.Cos(Theta),
	}
}

// barSlant is the horizontal run of a bar's leading edge over one thickness.
func barSlant() float64 {
	return math.Sin(Theta) + BarThickness*math.Sin(Theta)
}

// outerBar builds the horizontal bar of level i hanging off spine point p.
func outerBar(p Point, i int, width float64) Polygon {
	if i == 0 {
		return Polygon{
			{X: p.X, Y: p.Y},
			{X: width / 2, Y: p.Y},
			{X: width / 2, Y: p.Y + BarThickness},
			{X: p.X, Y: p.Y + BarThickness},
		}
	}
	edge := width/4 + float64(i)*BarThickness
	return Polygon{
		{X: p.X, Y: p.Y},
		{X: edge, Y: p.Y},
		{X: edge + barSlant(), Y: p.Y + BarThickness},
		{X: p.X, Y: p.Y + BarThickness},
	}
}

// innerBar builds the bar running from the midline back toward the outer bar of level i,
// leaving a slot of one thickness between the two.
func innerBar(p Point, i int, width float64) Polygon {
	if i == 0 {
		return outerBar(p, 0, width)
	}
	edge := width/4 + BarThickness + float64(i)*BarThickness
	return Polygon{
		{X: width / 2, Y: p.Y},
		{X: edge, Y: p.Y},
		{X: edge + barSlant(), Y: p.Y + BarThickness},
		{X: width / 2, Y: p.Y + BarThickness},
	}
}

func translateY(poly Polygon, dy float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = Point{X: p.X, Y: p.Y + dy}
	}
	return out
}

// mirror reflects poly about the vertical line x = width/2.
func mirror(poly Polygon, width float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = Point{X: width - p.X, Y: p.Y}
	}
	return out
}

// GenerateScene computes the medal holder drawing for p. It is pure and deterministic.
// p must satisfy Validate; outside that domain the result is unspecified.
func GenerateScene(p Parameters) Scene {
	width := p.Width
	increment := ParamIncrement()
	sBottom := float64(p.BarCount-1) * increment

	// --- Diagonal bar (left) ---
	top := rotatePoint(0)
	top.X = BarThickness // flush with the left edge
	bottom := rotatePoint(sBottom)
	inset := Point{X: bottom.X, Y: bottom.Y - diagonalInset + BarThickness}
	diagonal := Polygon{{X: 0, Y: top.Y}, top, bottom, inset}

	// --- Spine attachment points ---
	starts := make([]Point, p.BarCount)
	for i := range starts {
		pt := rotatePoint(float64(i) * increment)
		if i == 0 {
			pt.X = BarThickness
		}
		starts[i] = pt
	}

	// --- Bounding box ---
	b := bounds{}
	b.updatePoint(top.X, top.Y)
	b.updatePoint(bottom.X, bottom.Y)
	b.updatePoint(inset.X, inset.Y)
	for _, pt := range starts {
		b.updatePoint(pt.X, pt.Y)
		b.updatePoint(pt.X, pt.Y+BarThickness)
	}
	sceneHeight := b.maxY - b.minY + scenePadding
	shift := -b.minY

	// --- Left side, shifted ---
	leftDiagonal := translateY(diagonal, shift)
	leftBars := make([]Polygon, p.BarCount)
	leftInner := make([]Polygon, p.BarCount)
	for i, pt := range starts {
		leftBars[i] = translateY(outerBar(pt, i, width), shift)
		leftInner[i] = translateY(innerBar(pt, i, width), shift)
	}

	// --- Right side by reflection ---
	horizontal := make([]Polygon, 0, 2*p.BarCount)
	inner := make([]Polygon, 0, 2*p.BarCount)
	horizontal = append(horizontal, leftBars...)
	inner = append(inner, leftInner...)
	for i := range leftBars {
		horizontal = append(horizontal, mirror(leftBars[i], width))
		inner = append(inner, mirror(leftInner[i], width))
	}

	// The label hangs below the top edge of the topmost bar.
	labelY := starts[0].Y + shift + labelOffset

	scene := Scene{
		Width:          width,
		Height:         sceneHeight,
		MinY:           b.minY,
		ParamIncrement: increment,
		BarCount:       p.BarCount,
		Design:         p.Design,
		DiagonalBars:   [2]Polygon{leftDiagonal, mirror(leftDiagonal, width)},
		HorizontalBars: horizontal,
		InnerBars:      inner,
		CenterBar: Rect{
			X:      width/2 - BarThickness/2,
			Y:      shift, // spine origin
			Width:  BarThickness,
			Height: sceneHeight - centerBarInset,
		},
		BottomLine: Rect{
			X:      0,
			Y:      sceneHeight - bottomLineOffset,
			Width:  width,
			Height: bottomLineHeight,
		},
		Label: Label{
			Text:   p.Name,
			Anchor: Point{X: width / 2, Y: labelY},
		},
		Icons: make([]IconPlacement, 0, 2),
		ViewBox: ViewBox{
			MinX:   0,
			MinY:   -TopMargin,
			Width:  width,
			Height: sceneHeight + TopMargin,
		},
	}

	if asset, ok := p.Design.IconAsset(); ok {
		iconY := labelY - IconSize/2 - iconBias
		scene.Icons = append(scene.Icons,
			IconPlacement{Asset: asset, Anchor: Point{X: iconOffset - IconSize/2, Y: iconY}, Width: IconSize, Height: IconSize},
			IconPlacement{Asset: asset, Anchor: Point{X: width - iconOffset - IconSize/2, Y: iconY}, Width: IconSize, Height: IconSize},
		)
	}

	return scene
}
