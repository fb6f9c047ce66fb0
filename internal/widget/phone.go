package widget

import "regexp"

// Country is one entry of the dial-code selector.
type Country struct {
	Code string // dialing code, e.g. "+39"
	Name string
	Flag string
}

// Countries is the fixed selector list. Duplicate dial codes are allowed for
// distinct countries (+1 appears for both the US and Canada).
var Countries = []Country{
	{"+39", "Italy", "🇮🇹"},
	{"+33", "France", "🇫🇷"},
	{"+49", "Germany", "🇩🇪"},
	{"+34", "Spain", "🇪🇸"},
	{"+44", "United Kingdom", "🇬🇧"},
	{"+1", "United States", "🇺🇸"},
	{"+41", "Switzerland", "🇨🇭"},
	{"+43", "Austria", "🇦🇹"},
	{"+31", "Netherlands", "🇳🇱"},
	{"+32", "Belgium", "🇧🇪"},
	{"+351", "Portugal", "🇵🇹"},
	{"+30", "Greece", "🇬🇷"},
	{"+7", "Russia", "🇷🇺"},
	{"+86", "China", "🇨🇳"},
	{"+81", "Japan", "🇯🇵"},
	{"+91", "India", "🇮🇳"},
	{"+55", "Brazil", "🇧🇷"},
	{"+54", "Argentina", "🇦🇷"},
	{"+61", "Australia", "🇦🇺"},
	{"+1", "Canada", "🇨🇦"},
}

var phoneJunk = regexp.MustCompile(`[^\d\s-]`)

// SanitizeNumber drops everything but digits, spaces, and hyphens. Applied on
// every change, so pasted garbage never reaches the draft. The leading "+" of
// the dial code belongs to the country selector, not this field.
func SanitizeNumber(raw string) string {
	return phoneJunk.ReplaceAllString(raw, "")
}

// PhoneInput is the composite widget: a country-code dropdown plus the
// free-text number field.
type PhoneInput struct {
	Open        bool
	Number      string
	CountryCode string
}

func NewPhoneInput() *PhoneInput { return &PhoneInput{CountryCode: "+39"} }

func (p *PhoneInput) Toggle() { p.Open = !p.Open }
func (p *PhoneInput) Close()  { p.Open = false }

func (p *PhoneInput) SetNumber(raw string) { p.Number = SanitizeNumber(raw) }

func (p *PhoneInput) SelectCountry(code string) {
	p.CountryCode = code
	p.Open = false
}

// SelectedCountry resolves the current dial code to its first matching list
// entry, mirroring how the selector displays duplicates.
func (p *PhoneInput) SelectedCountry() (Country, bool) {
	for _, c := range Countries {
		if c.Code == p.CountryCode {
			return c, true
		}
	}
	return Country{}, false
}
