package validate

import (
	"reflect"
	"testing"
)

func valid() Candidate {
	return Candidate{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "9876543210",
		PANNumber:   "ABCDE1234F",
	}
}

func TestCheck_ValidRecord(t *testing.T) {
	if errs := Check(valid()); len(errs) != 0 {
		t.Errorf("Check() = %v, want no errors", errs)
	}
}

func TestCheck_SingleFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Candidate)
		want   string
	}{
		{
			name:   "empty first name",
			mutate: func(c *Candidate) { c.FirstName = "" },
			want:   "First name is required",
		},
		{
			name:   "whitespace first name",
			mutate: func(c *Candidate) { c.FirstName = "   " },
			want:   "First name is required",
		},
		{
			name:   "empty last name",
			mutate: func(c *Candidate) { c.LastName = "\t" },
			want:   "Last name is required",
		},
		{
			name:   "empty email",
			mutate: func(c *Candidate) { c.Email = "" },
			want:   "Email is required",
		},
		{
			name:   "email missing at sign",
			mutate: func(c *Candidate) { c.Email = "john.example.com" },
			want:   "Invalid email format",
		},
		{
			name:   "email missing domain dot",
			mutate: func(c *Candidate) { c.Email = "john@example" },
			want:   "Invalid email format",
		},
		{
			name:   "email with whitespace",
			mutate: func(c *Candidate) { c.Email = "jo hn@example.com" },
			want:   "Invalid email format",
		},
		{
			name:   "email empty local part",
			mutate: func(c *Candidate) { c.Email = "@example.com" },
			want:   "Invalid email format",
		},
		{
			name:   "empty phone",
			mutate: func(c *Candidate) { c.PhoneNumber = "" },
			want:   "Phone number is required",
		},
		{
			name:   "short phone",
			mutate: func(c *Candidate) { c.PhoneNumber = "123456789" },
			want:   "Phone number must be 10 digits",
		},
		{
			name:   "long phone",
			mutate: func(c *Candidate) { c.PhoneNumber = "12345678901" },
			want:   "Phone number must be 10 digits",
		},
		{
			name:   "phone with letters",
			mutate: func(c *Candidate) { c.PhoneNumber = "98765b3210" },
			want:   "Phone number must be 10 digits",
		},
		{
			name:   "empty pan",
			mutate: func(c *Candidate) { c.PANNumber = "" },
			want:   "PAN number is required",
		},
		{
			name:   "pan wrong shape",
			mutate: func(c *Candidate) { c.PANNumber = "AB1234567F" },
			want:   "PAN number must be in format: 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)",
		},
		{
			name:   "pan too short",
			mutate: func(c *Candidate) { c.PANNumber = "ABCDE123F" },
			want:   "PAN number must be in format: 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			errs := Check(c)
			if len(errs) != 1 || errs[0] != tt.want {
				t.Errorf("Check() = %v, want exactly [%q]", errs, tt.want)
			}
		})
	}
}

// Each rule fails independently: two bad fields yield two messages.
func TestCheck_IndependentRules(t *testing.T) {
	c := valid()
	c.FirstName = ""
	c.Email = "not-an-email"

	want := []string{"First name is required", "Invalid email format"}
	if got := Check(c); !reflect.DeepEqual(got, want) {
		t.Errorf("Check() = %v, want %v", got, want)
	}
}

func TestCheck_AllFieldsEmpty(t *testing.T) {
	errs := Check(Candidate{})
	if len(errs) != 5 {
		t.Fatalf("Check(empty) returned %d errors, want 5: %v", len(errs), errs)
	}
}

// The PAN rule is case-insensitive on input; the stored form is uppercase.
func TestCheck_PANCaseInsensitive(t *testing.T) {
	c := valid()
	c.PANNumber = "abcde1234f"
	if errs := Check(c); len(errs) != 0 {
		t.Errorf("Check(lowercase pan) = %v, want no errors", errs)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Candidate{
		FirstName:   "  John ",
		LastName:    " Doe",
		Email:       " JOHN@EX.com ",
		PhoneNumber: " 9876543210 ",
		PANNumber:   "abcde1234f ",
	})
	want := Candidate{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@ex.com",
		PhoneNumber: "9876543210",
		PANNumber:   "ABCDE1234F",
	}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}
