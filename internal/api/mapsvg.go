package api

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"pacenote/internal/domain"
)

// Track coordinates are drawn in decimetres on the X/Z plane.
const (
	mapScale   = 10
	mapMargin  = 1000
	mapSizePx  = 256
	vehicleRad = 100
)

func drawTrack(w io.Writer, title string, track []domain.TrackPoint) {
	xs := make([]int, len(track))
	zs := make([]int, len(track))
	minX, maxX := int(track[0].X*mapScale), int(track[0].X*mapScale)
	minZ, maxZ := int(track[0].Z*mapScale), int(track[0].Z*mapScale)
	for i, p := range track {
		xs[i], zs[i] = int(p.X*mapScale), int(p.Z*mapScale)
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minZ, maxZ = min(minZ, zs[i]), max(maxZ, zs[i])
	}

	canvas := svg.New(w)
	canvas.StartviewUnit(mapSizePx, mapSizePx, "px",
		minX-mapMargin, minZ-mapMargin,
		maxX-minX+2*mapMargin, maxZ-minZ+2*mapMargin,
	)
	canvas.Style("",
		"line{stroke:cyan;stroke-width:10vh}",
		"circle{fill:red;stroke:black;stroke-width:10vh}",
		"text{text-anchor:middle;font-size:200vh;fill:silver}",
	)
	canvas.Text((maxX-minX)/2+minX, maxZ+800, title)

	// One group per segment, id = elapsed nanoseconds of its end point.
	canvas.Gid("points")
	for i := 1; i < len(track); i++ {
		canvas.Gid(strconv.FormatInt(track[i].Elapsed, 10))
		canvas.Line(xs[i-1], zs[i-1], xs[i], zs[i])
		canvas.Gend()
	}
	canvas.Gend()

	canvas.Gid("vehicle")
	canvas.Circle(xs[0], zs[0], vehicleRad)
	canvas.Gend()
	canvas.End()
}
