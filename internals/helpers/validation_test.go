package helper

import "testing"

func TestIsPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"+51015431138", true},
		{"51999999999", true},
		{"999999999", true},
		{"12345678", false},
		{"abc", false},
		{"+51 999 999 999", false},
		{"+12345678901234567", false},
	}
	for _, tt := range tests {
		if got := IsPhone(tt.in); got != tt.want {
			t.Errorf("IsPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsLink(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#contacto", true},
		{"/servicios", true},
		{"https://actechnology.com.pe", true},
		{"//evil.example", false},
		{"javascript:alert(1)", false},
		{"", false},
		{"/con espacio", false},
	}
	for _, tt := range tests {
		if got := IsLink(tt.in); got != tt.want {
			t.Errorf("IsLink(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type form struct {
		Phone string `json:"contact_phone" validate:"required,phone"`
		CTA   string `json:"hero_cta_link" validate:"omitempty,link"`
	}
	errs := ValidateStruct(form{Phone: "abc", CTA: "nope"})
	if _, ok := errs["contact_phone"]; !ok {
		t.Errorf("errors = %v, want contact_phone", errs)
	}
	if _, ok := errs["hero_cta_link"]; !ok {
		t.Errorf("errors = %v, want hero_cta_link", errs)
	}
	if errs := ValidateStruct(form{Phone: "+51999999999"}); errs != nil {
		t.Errorf("valid form returned %v", errs)
	}
}
