package gamedata

import "testing"

func TestLoadShips(t *testing.T) {
	ships, err := LoadShips()
	if err != nil {
		t.Fatalf("LoadShips() error: %v", err)
	}
	if len(ships) != 5 {
		t.Fatalf("got %d ships, want 5", len(ships))
	}

	for _, s := range ships {
		if s.ID == "" {
			t.Errorf("ship %q has empty ID", s.Name)
		}
		if s.Name == "" {
			t.Errorf("ship %q has empty Name", s.ID)
		}
		if s.Length < 2 || s.Length > 5 {
			t.Errorf("ship %q has length %d, want 2-5", s.ID, s.Length)
		}
	}
}

func TestFleetCells(t *testing.T) {
	ships := MustLoadShips()
	if got := FleetCells(ships); got != 17 {
		t.Errorf("FleetCells() = %d, want 17", got)
	}

	if got := FleetCells(nil); got != 0 {
		t.Errorf("FleetCells(nil) = %d, want 0", got)
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() error: %v", err)
	}
	if theme.Water == theme.Hit {
		t.Error("water and hit colors should differ")
	}
}

func TestLoadCues(t *testing.T) {
	cues, err := LoadCues()
	if err != nil {
		t.Fatalf("LoadCues() error: %v", err)
	}

	byID := make(map[string]CueDef, len(cues))
	for _, c := range cues {
		byID[c.ID] = c
	}
	for _, id := range []string{"hit", "miss", "sink", "error", "win", "lose"} {
		cue, ok := byID[id]
		if !ok {
			t.Errorf("cue %q missing", id)
			continue
		}
		if cue.DurationMS <= 0 {
			t.Errorf("cue %q has duration %d, want > 0", id, cue.DurationMS)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[ShipsFile]("nope.json"); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		wantErr bool
	}{
		{"#FF0000", false},
		{"00ff00", false},
		{"#1A2B3C", false},
		{"", true},
		{"#FFF", true},
		{"#GGGGGG", true},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.hex)
		if gotErr := err != nil; gotErr != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
		}
	}
}

func TestParseHexColorValues(t *testing.T) {
	c, err := ParseHexColor("#FF8000")
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := c.RGB()
	if r != 0xFF || g != 0x80 || b != 0x00 {
		t.Errorf("RGB() = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}
}
