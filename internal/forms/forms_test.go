package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListIntentValidate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "valid text", text: "Buy milk", expected: nil},
		{name: "empty text", text: "", expected: []string{EmptyItemError}},
		{name: "whitespace only", text: "   \t", expected: []string{EmptyItemError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewListIntent{Text: tt.text}.Validate()
			if tt.expected == nil {
				assert.False(t, errs.Any())
			} else {
				assert.Equal(t, tt.expected, errs.Field("text"))
			}
		})
	}
}

func TestNewListIntentValidatesAsFirstItem(t *testing.T) {
	// A new list is validated through its first item, so both intents
	// must agree on the same text.
	for _, text := range []string{"Buy milk", "", "  "} {
		assert.Equal(t,
			NewItemIntent{Text: text}.Validate(),
			NewListIntent{Text: text}.Validate(),
		)
	}
}

func TestNewItemIntentValidate(t *testing.T) {
	assert.False(t, NewItemIntent{Text: "wash car"}.Validate().Any())
	assert.Equal(t, []string{EmptyItemError}, NewItemIntent{Text: ""}.Validate().Field("text"))
}

func TestExistingListItemIntentValidate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		existing []string
		expected []string
	}{
		{name: "new text", text: "wash car", existing: []string{"buy milk"}, expected: nil},
		{name: "empty text", text: "", existing: []string{"buy milk"}, expected: []string{EmptyItemError}},
		{
			name:     "duplicate of existing item",
			text:     "buy milk",
			existing: []string{"buy milk", "wash car"},
			expected: []string{DuplicateItemError},
		},
		{name: "no existing items", text: "buy milk", existing: nil, expected: nil},
		{
			// Same text in a different list is fine: only the target
			// list's items are consulted.
			name:     "text present elsewhere",
			text:     "buy milk",
			existing: []string{"wash car"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ExistingListItemIntent{ListID: 1, Text: tt.text}
			errs := intent.Validate(tt.existing)
			if tt.expected == nil {
				assert.False(t, errs.Any())
			} else {
				assert.Equal(t, tt.expected, errs.Field("text"))
			}
		})
	}
}
