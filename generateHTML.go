// generateHTML.go
package main

import (
	"fmt"
	"strings"
)

// PreviewPage is the content of the standalone configurator preview.
type PreviewPage struct {
	Params        Parameters
	Quote         *QuoteResponse
	SVG           string
	ChartURL      string // optional iframe with the price chart
	BackgroundURL string // optional photo behind the drawing
}

// GeneratePreviewHTML wraps a rendered holder into a page resembling the shop configurator.
func GeneratePreviewHTML(page PreviewPage) (string, error) {
	if strings.TrimSpace(page.SVG) == "" {
		return "", fmt.Errorf("preview needs a rendered SVG")
	}
	var htmlBuilder strings.Builder

	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("<title>Medal holder %s</title>\n", escapeHTML(page.Params.Name)))
	htmlBuilder.WriteString("<style>\n")
	htmlBuilder.WriteString("body { margin: 0; font-family: Nunito, sans-serif; color: #fff; background: #222; }\n")
	htmlBuilder.WriteString(".bg-image { position: fixed; inset: 0; background-size: cover; background-position: center; filter: brightness(0.7); z-index: 0; }\n")
	htmlBuilder.WriteString(".content { position: relative; z-index: 1; padding: 20px; text-align: center; font-size: 18px; }\n")
	htmlBuilder.WriteString(".holder svg { display: block; margin: auto; width: 75%; }\n")
	htmlBuilder.WriteString(".quote { margin-top: 20px; }\n")
	htmlBuilder.WriteString(".warning { color: red; font-size: 14px; }\n")
	htmlBuilder.WriteString("iframe { border: 0; width: 90%; height: 520px; background: #fff; margin-top: 20px; }\n")
	htmlBuilder.WriteString("</style>\n</head>\n<body>\n")

	if page.BackgroundURL != "" {
		htmlBuilder.WriteString(fmt.Sprintf("<div class=\"bg-image\" style=\"background-image: url('%s')\"></div>\n", escapeCSS(page.BackgroundURL)))
	}

	htmlBuilder.WriteString("<div class=\"content\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("<h1>%s</h1>\n", escapeHTML(string(page.Params.Design))))
	htmlBuilder.WriteString("<div class=\"holder\">\n")
	htmlBuilder.WriteString(page.SVG)
	htmlBuilder.WriteString("</div>\n")

	htmlBuilder.WriteString("<div class=\"quote\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("<div>Bars: %d</div>\n", page.Params.BarCount))
	htmlBuilder.WriteString(fmt.Sprintf("<div>Width: %s mm</div>\n", formatNumber(page.Params.Width)))
	if page.Quote != nil {
		htmlBuilder.WriteString(fmt.Sprintf("<div>Minimum width: %d mm</div>\n", page.Quote.MinWidth))
		htmlBuilder.WriteString(fmt.Sprintf("<div>Price: %.2f EUR</div>\n", page.Quote.Price))
		if page.Quote.MaxReached {
			htmlBuilder.WriteString("<div class=\"warning\">Maximum width reached, please choose a shorter text.</div>\n")
		}
	}
	htmlBuilder.WriteString("</div>\n")

	if page.ChartURL != "" {
		htmlBuilder.WriteString(fmt.Sprintf("<iframe src=\"%s\" title=\"Price chart\"></iframe>\n", escapeHTML(page.ChartURL)))
	}

	htmlBuilder.WriteString("</div>\n")
	htmlBuilder.WriteString("</body>\n</html>")
	return htmlBuilder.String(), nil
}

// Simple CSS Escaping (basic)
func escapeCSS(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}
