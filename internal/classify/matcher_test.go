package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyware/tally/internal/model"
)

func TestMatcher_Match(t *testing.T) {
	matcher := NewMatcher(DefaultRules())

	tests := []struct {
		description string
		want        string
	}{
		{description: "WHOLE FOODS SUPERMARKET #123", want: "food"},
		{description: "Uber trip downtown", want: "transport"},
		{description: "Cloud hosting invoice", want: "software"},
		{description: "Monthly electric bill", want: "utilities"},
		{description: "Completely unknown merchant", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.description))
		})
	}
}

func TestMatcher_FirstRuleWins(t *testing.T) {
	matcher := NewMatcher([]Rule{
		{Category: "first", Keywords: []string{"shop"}},
		{Category: "second", Keywords: []string{"shop"}},
	})

	assert.Equal(t, "first", matcher.Match("coffee shop"))
}

func TestMatcher_Apply(t *testing.T) {
	matcher := NewMatcher(DefaultRules())

	txns := []model.Transaction{
		{ID: "t1", Description: "Grocery Market", Category: ""},
		{ID: "t2", Description: "Grocery Market", Category: model.DefaultCategory},
		{ID: "t3", Description: "Grocery Market", Category: "household"},
		{ID: "t4", Description: "mystery charge", Category: ""},
	}

	categorized := matcher.Apply(txns)

	assert.Equal(t, 2, categorized)
	assert.Equal(t, "food", txns[0].Category)
	assert.Equal(t, "food", txns[1].Category)
	// Explicit categories are never overwritten.
	assert.Equal(t, "household", txns[2].Category)
	assert.Equal(t, "", txns[3].Category)
}
