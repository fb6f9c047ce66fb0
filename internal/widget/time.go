package widget

import "slices"

// TimePicker renders exactly the options it is given; when the list is empty
// it shows a "no slots" placeholder instead of a dropdown.
type TimePicker struct {
	Open    bool
	Value   string
	Options []string
}

func NewTimePicker() *TimePicker { return &TimePicker{} }

func (p *TimePicker) Toggle() { p.Open = !p.Open }
func (p *TimePicker) Close()  { p.Open = false }

// SetOptions replaces the option list wholesale (last received wins). The
// current value is not touched here; the form controller owns that
// invalidation.
func (p *TimePicker) SetOptions(options []string) { p.Options = options }

// HasOptions is false in the placeholder state.
func (p *TimePicker) HasOptions() bool { return len(p.Options) > 0 }

// Select accepts only values present in the current options and closes the
// panel on success.
func (p *TimePicker) Select(t string) bool {
	if !slices.Contains(p.Options, t) {
		return false
	}
	p.Value = t
	p.Open = false
	return true
}
