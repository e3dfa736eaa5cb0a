package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// SnapshotSVG draws every body of snap as a filled circle on a dark
// background the size of the simulation area.
func SnapshotSVG(snap dynamo.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, snap.Width, snap.Height, snap.Width, snap.Height))

	for _, b := range snap.Bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>
`, b.X, b.Y, b.Radius, b.Hex))
	}

	sb.WriteString(fmt.Sprintf(`<text x="8" y="20" fill="#c8c8c8" font-family="monospace" font-size="14">bounces %d  collisions %d</text>
`, snap.Bounces, snap.Collisions))
	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG plots values as a polyline scaled to width x height.
func SeriesSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
