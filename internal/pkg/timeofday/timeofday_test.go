package timeofday

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: MustNew(9, 0)},
		{in: "09:00:00", want: MustNew(9, 0)},
		{in: "18:30", want: MustNew(18, 30)},
		{in: "9:00 AM", want: MustNew(9, 0)},
		{in: "12:00 AM", want: MustNew(0, 0)},
		{in: "12:30 PM", want: MustNew(12, 30)},
		{in: "1:15 pm", want: MustNew(13, 15)},
		{in: "11:45 PM", want: MustNew(23, 45)},
		{in: "", wantErr: true},
		{in: "9", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "0:30 AM", wantErr: true},
		{in: "nine o'clock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		tod  TimeOfDay
		want string
	}{
		{MustNew(0, 0), "12:00 AM"},
		{MustNew(9, 0), "9:00 AM"},
		{MustNew(10, 30), "10:30 AM"},
		{MustNew(12, 0), "12:00 PM"},
		{MustNew(13, 5), "1:05 PM"},
		{MustNew(23, 45), "11:45 PM"},
	}

	for _, tt := range tests {
		if got := tt.tod.Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.tod, got, tt.want)
		}
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 15 {
		tod := TimeOfDay(m)
		parsed, err := Parse(tod.Label())
		if err != nil {
			t.Fatalf("Parse(Label(%v)) failed: %v", tod, err)
		}
		if parsed != tod {
			t.Errorf("round trip %v -> %q -> %v", tod, tod.Label(), parsed)
		}
	}
}

func TestAddAndCompare(t *testing.T) {
	nine := MustNew(9, 0)
	if got := nine.Add(30); got != MustNew(9, 30) {
		t.Errorf("Add(30) = %v", got)
	}
	if !nine.Before(MustNew(9, 30)) {
		t.Error("9:00 should be before 9:30")
	}
	if !MustNew(9, 30).After(nine) {
		t.Error("9:30 should be after 9:00")
	}
}
