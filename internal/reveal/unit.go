package reveal

// Unit is a fragment of text revealed one rune at a time.
type Unit struct {
	full  []rune
	shown int
}

func NewUnit(text string) *Unit {
	return &Unit{full: []rune(text)}
}

func (u *Unit) Full() string { return string(u.full) }
func (u *Unit) Len() int     { return len(u.full) }
func (u *Unit) Shown() int   { return u.shown }

// Text returns the revealed prefix.
func (u *Unit) Text() string { return string(u.full[:u.shown]) }

func (u *Unit) Complete() bool { return u.shown >= len(u.full) }

func (u *Unit) advance() {
	if u.shown < len(u.full) {
		u.shown++
	}
}

func (u *Unit) finish() { u.shown = len(u.full) }

// Sequence is an ordered list of units revealed one after another.
type Sequence struct {
	units []*Unit
	cur   int
	done  chan struct{}
}

func NewSequence(units ...*Unit) *Sequence {
	s := &Sequence{units: units, done: make(chan struct{})}
	s.skipComplete()
	return s
}

func (s *Sequence) Units() []*Unit { return s.units }

// Current returns the unit being revealed, or nil once everything is shown.
func (s *Sequence) Current() *Unit {
	if s.cur >= len(s.units) {
		return nil
	}
	return s.units[s.cur]
}

func (s *Sequence) Complete() bool { return s.cur >= len(s.units) }

// Done is closed when every unit is fully revealed.
func (s *Sequence) Done() <-chan struct{} { return s.done }

// Tick reveals one more rune of the current unit and reports whether the
// whole sequence is complete afterwards.
func (s *Sequence) Tick() bool {
	if s.Complete() {
		return true
	}
	s.units[s.cur].advance()
	s.skipComplete()
	return s.Complete()
}

// Finish reveals every unit at once.
func (s *Sequence) Finish() {
	for _, u := range s.units {
		u.finish()
	}
	s.cur = len(s.units)
	s.skipComplete()
}

// skipComplete moves past finished (and empty) units and closes done at the end.
func (s *Sequence) skipComplete() {
	for s.cur < len(s.units) && s.units[s.cur].Complete() {
		s.cur++
	}
	if s.cur >= len(s.units) {
		select {
		case <-s.done:
		default:
			close(s.done)
		}
	}
}
