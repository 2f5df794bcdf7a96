package errors

import (
	"strings"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     int
		max     int
		want    int
		wantErr bool
	}{
		{"simple", "4", 1, -1, 4, false},
		{"surrounding space", " 7 ", 1, -1, 7, false},
		{"zero allowed", "0", 0, 5, 0, false},
		{"at max", "5", 0, 5, 5, false},

		{"not a number", "four", 1, -1, 0, true},
		{"empty", "", 1, -1, 0, true},
		{"float", "1.5", 1, -1, 0, true},
		{"below min", "0", 1, -1, 0, true},
		{"negative", "-3", 0, 10, 0, true},
		{"above max", "6", 0, 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount("n", tt.raw, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCount(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidArgument) {
					t.Errorf("ParseCount(%q) code = %v, want %v", tt.raw, GetCode(err), ErrCodeInvalidArgument)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "output_4_2.txt", false},
		{"nested", "results/output_4_2.txt", false},
		{"absolute", "/tmp/output_4_2.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
