package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 600

// History is a bounded series of samples, oldest first.
type History struct {
	values []float64
	limit  int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = historyCapacity
	}
	return &History{values: make([]float64, 0, limit), limit: limit}
}

func (h *History) Add(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.limit {
		h.values = h.values[1:]
	}
}

func (h *History) Values() []float64 { return h.values }
func (h *History) Len() int          { return len(h.values) }

// Last returns the newest sample, or 0 when empty.
func (h *History) Last() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[len(h.values)-1]
}

// EnergyChart plots values as an ASCII line chart.
func EnergyChart(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Sparkline renders the last width samples as block characters.
func Sparkline(values []float64, width int, style lipgloss.Style) string {
	if len(values) == 0 || width <= 0 {
		return style.Render(strings.Repeat("─", max(width, 0)))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		b.WriteRune(chars[max(0, min(idx, len(chars)-1))])
	}
	return style.Render(b.String())
}
