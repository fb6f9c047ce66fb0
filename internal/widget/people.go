package widget

// PeopleSelect is two synchronized controls over one integer: a stepper and
// a dropdown. The value is always clamped to [Min, Max]; stepping at a bound
// is a no-op, not an error.
type PeopleSelect struct {
	Open  bool
	Value int
	Min   int
	Max   int
}

func NewPeopleSelect(min, max int) *PeopleSelect {
	if max < min {
		max = min
	}
	return &PeopleSelect{Value: min, Min: min, Max: max}
}

func (p *PeopleSelect) Toggle() { p.Open = !p.Open }
func (p *PeopleSelect) Close()  { p.Open = false }

func (p *PeopleSelect) Increment() {
	if p.Value < p.Max {
		p.Value++
	}
}

func (p *PeopleSelect) Decrement() {
	if p.Value > p.Min {
		p.Value--
	}
}

// Select is the dropdown path; out-of-range values clamp to the bounds.
func (p *PeopleSelect) Select(v int) {
	if v < p.Min {
		v = p.Min
	}
	if v > p.Max {
		v = p.Max
	}
	p.Value = v
	p.Open = false
}

// Options lists every selectable value for the dropdown.
func (p *PeopleSelect) Options() []int {
	out := make([]int, 0, p.Max-p.Min+1)
	for v := p.Min; v <= p.Max; v++ {
		out = append(out, v)
	}
	return out
}
