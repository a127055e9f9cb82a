package duel

import "testing"

func TestAnswerLabel(t *testing.T) {
	cases := []struct {
		name    string
		assetID string
		want    string
	}{
		{"ordinal prefix", "03-Taylor Swift.png", "Taylor Swift"},
		{"single digit", "1-Abba.jpg", "Abba"},
		{"padding spaces", "02- Fleetwood Mac .jpeg", "Fleetwood Mac"},
		{"no dash", "cover.png", "cover"},
		{"no dash no ext", "cover", "cover"},
		{"dash in answer", "07-Guns-N-Roses.gif", "Guns-N-Roses"},
		{"uppercase extension", "04-Queen.PNG", "Queen"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnswerLabel(tc.assetID); got != tc.want {
				t.Errorf("AnswerLabel(%q) = %q, want %q", tc.assetID, got, tc.want)
			}
		})
	}
}

func TestBuildDeckStartsWithPrompt(t *testing.T) {
	deck := BuildDeck([]string{"01-Abba.png", "02-Queen.png"})

	if len(deck) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(deck))
	}
	if !deck[0].Synthetic {
		t.Error("Expected first item to be the synthetic start prompt")
	}
	if deck[1].Label != "Abba" || deck[2].Label != "Queen" {
		t.Errorf("Expected asset order preserved, got %q, %q", deck[1].Label, deck[2].Label)
	}
	if deck[1].AssetID != "01-Abba.png" {
		t.Errorf("Expected asset id preserved, got %q", deck[1].AssetID)
	}
}

func TestBuildDeckEmptyCategory(t *testing.T) {
	deck := BuildDeck(nil)
	if len(deck) != 1 {
		t.Fatalf("Expected only the start prompt for an empty category, got %d items", len(deck))
	}
	if !deck[0].Synthetic {
		t.Error("Expected the lone item to be synthetic")
	}
}
