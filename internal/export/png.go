package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/viz"
)

// GraphToPNG writes the graph to path, scaled by scale.
func GraphToPNG(path string, g *physics.Graph, scale float64, th viz.Theme) error {
	dc, err := drawGraph(g, scale, th)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// WritePNG encodes the graph as PNG into w.
func WritePNG(w io.Writer, g *physics.Graph, scale float64, th viz.Theme) error {
	dc, err := drawGraph(g, scale, th)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func drawGraph(g *physics.Graph, scale float64, th viz.Theme) (*gg.Context, error) {
	if scale <= 0 {
		scale = 1
	}
	p := g.Params()
	dc := gg.NewContext(int(p.Width*scale), int(p.Height*scale))
	dc.SetColor(hexColor(string(th.Background)))
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	fontSize := 16 * scale
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	accent := hexColor(string(th.Accent))
	for _, n := range g.Nodes() {
		dc.DrawCircle(n.X*scale, n.Y*scale, n.R*scale)
		dc.SetColor(color.NRGBA{accent.R, accent.G, accent.B, 40})
		dc.FillPreserve()
		dc.SetColor(accent)
		dc.SetLineWidth(2 * scale)
		dc.Stroke()
	}

	dc.SetColor(hexColor(string(th.Text)))
	for _, n := range g.Nodes() {
		lines := strings.Split(n.Label, "\n")
		y := n.Y*scale - float64(len(lines)-1)*fontSize*0.6
		for i, l := range lines {
			dc.DrawStringAnchored(l, n.X*scale, y+float64(i)*fontSize*1.2, 0.5, 0.35)
		}
	}
	return dc, nil
}

// hexColor parses a theme colour, falling back to white.
func hexColor(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{255, 255, 255, 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}
}
