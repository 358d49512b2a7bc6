package language

import "testing"

func TestFromCode(t *testing.T) {
	tests := []struct {
		code string
		name string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"zh", "Chinese"},
		{"", "Auto-detect"},
		{"xx", "Auto-detect"}, // unknown falls back to Auto
	}

	for _, tc := range tests {
		if got := FromCode(tc.code); got.Name != tc.name {
			t.Errorf("FromCode(%q).Name = %q, want %q", tc.code, got.Name, tc.name)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"auto", ""},
		{"", ""},
		{"en", "en"},
		{"de", "de"},
	}

	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"", "auto", "en", "es", "ja", "uk"}
	for _, code := range valid {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}

	invalid := []string{"english", "EN", "xx", "e"}
	for _, code := range invalid {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != len(languages) {
		t.Fatalf("Codes() returned %d codes, want %d", len(codes), len(languages))
	}
	for _, code := range codes {
		if code == "" {
			t.Error("Codes() must not include the auto-detect code")
		}
	}
}
