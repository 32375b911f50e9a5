package main

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestRenderSVGStructure(t *testing.T) {
	scene := GenerateScene(Parameters{Width: 400, BarCount: 3, Name: "A&B", Design: DesignSwimming})
	svg, err := RenderSVG(scene, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}

	if !strings.Contains(svg, `viewBox="0 -32 400 92"`) {
		t.Errorf("missing view box in %.200s", svg)
	}
	// 2 diagonals + 3 outer and 3 inner bars per side.
	if n := strings.Count(svg, "<polygon "); n != 14 {
		t.Errorf("got %d polygons, want 14", n)
	}
	if n := strings.Count(svg, "<rect "); n != 2 {
		t.Errorf("got %d rects, want 2", n)
	}
	if n := strings.Count(svg, `href="swimmer.png"`); n != 4 {
		t.Errorf("got %d swimmer hrefs, want 4 (href and xlink:href per icon)", n)
	}
	if !strings.Contains(svg, ">A&amp;B</text>") {
		t.Error("label text is not escaped")
	}
	if !strings.Contains(svg, `<g id="left">`) || !strings.Contains(svg, `<g id="right">`) {
		t.Error("sides are not grouped")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	scene := GenerateScene(Parameters{Width: 500, BarCount: 4, Name: "X", Design: DesignCycling})
	svg, err := RenderSVG(scene, SVGOptions{
		Fill:       "#123456",
		Background: "#000000",
		OmitText:   true,
		OmitImages: true,
		PixelWidth: 1000,
	})
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if strings.Contains(svg, "<text") || strings.Contains(svg, "<image") {
		t.Error("omitted primitives were rendered")
	}
	if !strings.Contains(svg, `width="1000" height="224"`) {
		t.Errorf("pixel size missing in %.200s", svg)
	}
	if !strings.Contains(svg, `<rect x="0" y="-32" width="500" height="112" fill="#000000"/>`) {
		t.Error("background rect missing")
	}
	if strings.Contains(svg, defaultFill) {
		t.Error("default fill leaked into a recoloured drawing")
	}
}

func TestRenderSVGEmbedsIcons(t *testing.T) {
	dir := t.TempDir()
	icon := imaging.New(200, 200, color.NRGBA{B: 255, A: 255})
	if err := imaging.Save(icon, filepath.Join(dir, "cyclist.png")); err != nil {
		t.Fatalf("save icon: %v", err)
	}
	scene := GenerateScene(Parameters{Width: 400, BarCount: 3, Design: DesignCycling})
	opts := DefaultSVGOptions()
	opts.AssetDir = dir
	svg, err := RenderSVG(scene, opts)
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if n := strings.Count(svg, `href="data:image/png;base64,`); n != 4 {
		t.Errorf("got %d embedded hrefs, want 4 (href and xlink:href per icon)", n)
	}
}

func TestRenderSVGRejectsInconsistentScene(t *testing.T) {
	scene := GenerateScene(Parameters{Width: 400, BarCount: 3})
	scene.BarCount = 4
	if _, err := RenderSVG(scene, DefaultSVGOptions()); err == nil {
		t.Error("RenderSVG accepted a scene with a mismatched bar count")
	}
}

func TestGeneratePreviewHTML(t *testing.T) {
	if _, err := GeneratePreviewHTML(PreviewPage{}); err == nil {
		t.Error("GeneratePreviewHTML without SVG succeeded")
	}

	page, err := GeneratePreviewHTML(PreviewPage{
		Params: Parameters{Width: 1000, BarCount: 5, Name: "<B>", Design: DesignRunning},
		Quote:  &QuoteResponse{Width: 1250, MinWidth: 1250, Price: 40.5, MaxReached: true},
		SVG:    "<svg></svg>",
	})
	if err != nil {
		t.Fatalf("GeneratePreviewHTML failed: %v", err)
	}
	for _, want := range []string{"<title>Medal holder &lt;B&gt;</title>", "Minimum width: 1250 mm", "Price: 40.50 EUR", "Maximum width reached"} {
		if !strings.Contains(page, want) {
			t.Errorf("page is missing %q", want)
		}
	}
	if strings.Contains(page, "<iframe") || strings.Contains(page, "bg-image\" style") {
		t.Error("optional parts rendered without URLs")
	}
}
