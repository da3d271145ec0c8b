package model

import (
	"errors"
	"testing"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr error
	}{
		{name: "happy", input: "happy", want: MoodHappy},
		{name: "upper case", input: "SAD", want: MoodSad},
		{name: "padded", input: "  Neutral \n", want: MoodNeutral},
		{name: "russian happy", input: "веселое", want: MoodHappy},
		{name: "russian sad upper", input: "ГРУСТНОЕ", want: MoodSad},
		{name: "russian neutral padded", input: "  нейтральное  ", want: MoodNeutral},
		{name: "unknown", input: "angry", wantErr: ErrInvalidMood},
		{name: "empty", input: "", wantErr: ErrInvalidMood},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMood(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				var ime InvalidMoodError
				if !errors.As(err, &ime) || ime.Input != tc.input {
					t.Fatalf("expected InvalidMoodError carrying %q, got %#v", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseMood(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMood_Alternative(t *testing.T) {
	tests := []struct {
		in   Mood
		want Mood
	}{
		{in: MoodSad, want: MoodHappy},
		{in: MoodHappy, want: MoodSad},
		{in: MoodNeutral, want: MoodSad},
	}

	for _, tc := range tests {
		if got := tc.in.Alternative(); got != tc.want {
			t.Fatalf("%s.Alternative() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMood_Valid(t *testing.T) {
	for _, m := range Moods() {
		if !m.Valid() {
			t.Fatalf("expected %q to be valid", m)
		}
	}
	if Mood("angry").Valid() {
		t.Fatal("expected unknown mood to be invalid")
	}
	if Mood("").Valid() {
		t.Fatal("expected empty mood to be invalid")
	}
}
