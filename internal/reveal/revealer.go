package reveal

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultRate is the delay between two revealed runes.
const DefaultRate = 48 * time.Millisecond

var lastID atomic.Int64

// TickMsg advances the revealer with the matching ID by one rune.
type TickMsg struct{ ID int64 }

// DoneMsg is emitted once the revealer with the matching ID has finished.
type DoneMsg struct{ ID int64 }

// Revealer drives a Sequence from the Bubble Tea update loop.
type Revealer struct {
	id      int64
	seq     *Sequence
	rate    time.Duration
	reduced bool
}

func New(seq *Sequence, rate time.Duration, reduced bool) *Revealer {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Revealer{id: lastID.Add(1), seq: seq, rate: rate, reduced: reduced}
}

func (r *Revealer) ID() int64           { return r.id }
func (r *Revealer) Sequence() *Sequence { return r.seq }

// Start begins the reveal. With reduced motion the sequence is finished
// before Start returns and the returned command only reports completion.
func (r *Revealer) Start() tea.Cmd {
	if r.reduced {
		r.seq.Finish()
	}
	if r.seq.Complete() {
		return r.doneCmd()
	}
	return r.tickCmd()
}

// Update handles a tick addressed to this revealer; other ticks are ignored.
func (r *Revealer) Update(msg TickMsg) tea.Cmd {
	if msg.ID != r.id {
		return nil
	}
	if r.seq.Tick() {
		return r.doneCmd()
	}
	return r.tickCmd()
}

func (r *Revealer) tickCmd() tea.Cmd {
	id := r.id
	return tea.Tick(r.rate, func(time.Time) tea.Msg { return TickMsg{ID: id} })
}

func (r *Revealer) doneCmd() tea.Cmd {
	id := r.id
	return func() tea.Msg { return DoneMsg{ID: id} }
}

// Run reveals seq on a timer until it completes or ctx is cancelled.
// onTick, when set, is called after every revealed rune.
func Run(ctx context.Context, seq *Sequence, rate time.Duration, reduced bool, onTick func(*Sequence)) error {
	if reduced {
		seq.Finish()
		if onTick != nil {
			onTick(seq)
		}
		return nil
	}
	if rate <= 0 {
		rate = DefaultRate
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for !seq.Complete() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		seq.Tick()
		if onTick != nil {
			onTick(seq)
		}
	}
	return nil
}
