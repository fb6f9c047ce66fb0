package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() Draft {
	d := NewDraft()
	d.FirstName = "Mario"
	d.LastName = "Rossi"
	d.Phone = "333 1234567"
	d.Email = "mario@example.com"
	d.Date = "2025-06-01"
	d.Time = "20:00"
	d.Seats = 2
	return d
}

func TestValidateCompleteDraft(t *testing.T) {
	errs := Validate(validDraft())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"missing first name", func(d *Draft) { d.FirstName = "" }, "firstName"},
		{"whitespace first name", func(d *Draft) { d.FirstName = "   " }, "firstName"},
		{"missing last name", func(d *Draft) { d.LastName = "" }, "lastName"},
		{"missing phone", func(d *Draft) { d.Phone = "" }, "phone"},
		{"missing email", func(d *Draft) { d.Email = "" }, "email"},
		{"missing date", func(d *Draft) { d.Date = "" }, "date"},
		{"missing time", func(d *Draft) { d.Time = "" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			errs := Validate(d)
			assert.False(t, errs.Valid())
			assert.Contains(t, errs, tt.wantField)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"a@b", false},
		{"abc", false},
		{"mario.rossi@posta.example.it", true},
		{"spaces in@local.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			d := validDraft()
			d.Email = tt.email
			errs := Validate(d)
			if tt.valid {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Contains(t, errs, "email")
			}
		})
	}
}

func TestSeatsAndRequestsNeverRequired(t *testing.T) {
	d := validDraft()
	d.Seats = 0
	d.SpecialRequests = ""
	assert.True(t, Validate(d).Valid())
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, "+39", d.CountryCode)
	assert.Equal(t, MinSeats, d.Seats)
	assert.Equal(t, "pending", d.Status)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)
}

func TestFullNameTrims(t *testing.T) {
	d := NewDraft()
	d.FirstName = "  Mario "
	d.LastName = " Rossi  "
	assert.Equal(t, "Mario Rossi", d.FullName())
}
