package main

import (
	"testing"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
)

func TestModeGameID(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"", gargoyle.GameID, false},
		{"standard", gargoyle.GameID, false},
		{"gargoyle", gargoyle.GameID, false},
		{"practice", gargoyle.PracticeGameID, false},
		{"gargoyle_practice", gargoyle.PracticeGameID, false},
		{"hard", "", true},
	}

	for _, tt := range tests {
		got, err := modeGameID(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("modeGameID(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("modeGameID(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
