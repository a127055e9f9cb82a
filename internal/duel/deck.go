package duel

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Item is one entry in a duel's item deck.
type Item struct {
	// AssetID is the identifier the renderer resolves to an image.
	// Empty for synthesized items.
	AssetID string `json:"assetId,omitempty"`
	// Label is the display/answer text for the item.
	Label string `json:"label"`
	// Synthetic marks the neutral start prompt and the winner
	// announcement, which are not backed by assets.
	Synthetic bool `json:"synthetic,omitempty"`
}

const startPromptLabel = "Start the duel!"

// AnswerLabel derives an item's answer text from its asset identifier.
// Identifiers follow "<ordinal>-<Answer>.<ext>"; the label is the part
// after the first '-', extension stripped and trimmed. Without a '-'
// the whole trimmed stem is the label.
func AnswerLabel(assetID string) string {
	stem := strings.TrimSuffix(assetID, filepath.Ext(assetID))
	if i := strings.Index(stem, "-"); i >= 0 {
		return strings.TrimSpace(stem[i+1:])
	}
	return strings.TrimSpace(stem)
}

// BuildDeck assembles the duel deck: the neutral start prompt first,
// then one item per asset in order. The winner announcement is
// appended later, when the duel finishes.
func BuildDeck(assetIDs []string) []Item {
	deck := make([]Item, 0, len(assetIDs)+1)
	deck = append(deck, Item{Label: startPromptLabel, Synthetic: true})
	for _, id := range assetIDs {
		deck = append(deck, Item{AssetID: id, Label: AnswerLabel(id)})
	}
	return deck
}

func winnerItem(winnerName string) Item {
	return Item{Label: fmt.Sprintf("%s wins!", winnerName), Synthetic: true}
}
