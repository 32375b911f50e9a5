package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	defaultFill       = "#ffffff"
	defaultFont       = "Nunito, sans-serif"
	defaultFontSize   = 32.0
	iconPixels        = 100 // embedded icons are stored at twice their drawing size
	iconFileExtension = ".png"
)

// SVGOptions controls the presentation of a rendered scene. Geometry is never affected.
type SVGOptions struct {
	Fill       string  // colour of bars, text and divider
	Background string  // empty for a transparent background
	FontFamily string  // label font
	FontSize   float64 // label size in drawing units
	AssetDir   string  // icons are embedded from here; empty links them by file name
	OmitText   bool    // leave out the label (raster back ends draw it themselves)
	OmitImages bool    // leave out the icons
	PixelWidth float64 // optional width attribute, 0 keeps the drawing scalable
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Fill:       defaultFill,
		FontFamily: defaultFont,
		FontSize:   defaultFontSize,
	}
}

// iconPath returns the icon file for an asset name.
func iconPath(assetDir, asset string) string {
	return filepath.Join(assetDir, asset+iconFileExtension)
}

// iconHref embeds the asset as a data URI when it can be read, otherwise it links the file name.
func iconHref(assetDir, asset string) string {
	fallback := asset + iconFileExtension
	if assetDir == "" {
		return fallback
	}
	path := iconPath(assetDir, asset)
	if _, err := os.Stat(path); err != nil {
		log.Printf("Warning: icon '%s' not found, linking by name: %v", path, err)
		return fallback
	}
	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("Warning: could not decode icon '%s': %v", path, err)
		return fallback
	}
	img = imaging.Fit(img, iconPixels, iconPixels, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Printf("Warning: could not encode icon '%s': %v", path, err)
		return fallback
	}
	return fmt.Sprintf("data:%s;base64,%s", getMimeType(path), base64.StdEncoding.EncodeToString(buf.Bytes()))
}

func drawPolygon(svg *bytes.Buffer, poly Polygon, fill string) {
	fmt.Fprintf(svg, `    <polygon points="%s" fill="%s" stroke="%s"/>`, formatPoints(poly), fill, fill)
	svg.WriteString("\n")
}

func drawRect(svg *bytes.Buffer, r Rect, fill string, stroked bool) {
	stroke := ""
	if stroked {
		stroke = fmt.Sprintf(` stroke="%s"`, fill)
	}
	fmt.Fprintf(svg, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`,
		formatNumber(r.X), formatNumber(r.Y), formatNumber(r.Width), formatNumber(r.Height), fill, stroke)
	svg.WriteString("\n")
}

// drawSide writes the diagonal, outer and inner bars of one E-shape.
func drawSide(svg *bytes.Buffer, id string, diagonal Polygon, bars, inner []Polygon, fill string) {
	fmt.Fprintf(svg, `  <g id="%s">`, id)
	svg.WriteString("\n")
	drawPolygon(svg, diagonal, fill)
	for _, bar := range bars {
		drawPolygon(svg, bar, fill)
	}
	for _, bar := range inner {
		drawPolygon(svg, bar, fill)
	}
	svg.WriteString("  </g>\n")
}

// RenderSVG paints a scene as a standalone SVG document.
func RenderSVG(scene Scene, opts SVGOptions) (string, error) {
	if len(scene.HorizontalBars) == 0 || len(scene.HorizontalBars) != 2*scene.BarCount {
		return "", fmt.Errorf("scene has %d horizontal bars for %d levels", len(scene.HorizontalBars), scene.BarCount)
	}
	fill := firstNonEmpty(opts.Fill, defaultFill)
	fontFamily := firstNonEmpty(opts.FontFamily, defaultFont)
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	vb := scene.ViewBox

	var svg bytes.Buffer
	sizeAttr := ""
	if opts.PixelWidth > 0 {
		sizeAttr = fmt.Sprintf(` width="%s" height="%s"`,
			formatNumber(opts.PixelWidth), formatNumber(opts.PixelWidth*vb.Height/vb.Width))
	}
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="%s %s %s %s"%s preserveAspectRatio="xMidYMid meet">`,
		formatNumber(vb.MinX), formatNumber(vb.MinY), formatNumber(vb.Width), formatNumber(vb.Height), sizeAttr)
	svg.WriteString("\n")

	if opts.Background != "" {
		drawRect(&svg, Rect{X: vb.MinX, Y: vb.MinY, Width: vb.Width, Height: vb.Height}, opts.Background, false)
	}

	n := scene.BarCount
	drawSide(&svg, "left", scene.DiagonalBars[0], scene.HorizontalBars[:n], scene.InnerBars[:n], fill)
	drawSide(&svg, "right", scene.DiagonalBars[1], scene.HorizontalBars[n:], scene.InnerBars[n:], fill)
	drawRect(&svg, scene.CenterBar, fill, true)

	if !opts.OmitText && scene.Label.Text != "" {
		fmt.Fprintf(&svg, `  <text x="%s" y="%s" dominant-baseline="text-after-edge" text-anchor="middle" fill="%s" font-family="%s" font-size="%s">%s</text>`,
			formatNumber(scene.Label.Anchor.X), formatNumber(scene.Label.Anchor.Y), fill,
			escapeXML(fontFamily), formatNumber(fontSize), escapeXML(scene.Label.Text))
		svg.WriteString("\n")
	}

	if !opts.OmitImages {
		hrefs := map[string]string{}
		for _, icon := range scene.Icons {
			href, ok := hrefs[icon.Asset]
			if !ok {
				href = iconHref(opts.AssetDir, icon.Asset)
				hrefs[icon.Asset] = href
			}
			fmt.Fprintf(&svg, `  <image href="%s" xlink:href="%s" x="%s" y="%s" width="%s" height="%s"/>`,
				escapeXML(href), escapeXML(href),
				formatNumber(icon.Anchor.X), formatNumber(icon.Anchor.Y), formatNumber(icon.Width), formatNumber(icon.Height))
			svg.WriteString("\n")
		}
	}

	drawRect(&svg, scene.BottomLine, fill, false)
	svg.WriteString("</svg>\n")
	return svg.String(), nil
}
