package calculator

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{name: "integer", text: "100", want: 100},
		{name: "decimal", text: "50.50", want: 50.5},
		{name: "surrounding whitespace", text: " \t12.5\n", want: 12.5},
		{name: "exponent", text: "1e5", want: 100000},
		{name: "negative is accepted", text: "-3", want: -3},
		{name: "leading dot", text: ".5", want: 0.5},
		{name: "empty", text: "", wantErr: true},
		{name: "blank", text: "   ", wantErr: true},
		{name: "letters", text: "abc", wantErr: true},
		{name: "trailing garbage", text: "12abc", wantErr: true},
		{name: "comma decimal", text: "12,50", wantErr: true},
		{name: "nan", text: "NaN", wantErr: true},
		{name: "infinity", text: "-Inf", wantErr: true},
		{name: "overflow", text: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.text, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
