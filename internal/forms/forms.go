// Package forms validates raw form input before it reaches the service
// layer. Validation is pure: each intent is checked by a function that
// returns field-keyed error messages, and nothing is persisted until the
// intent comes back clean.
package forms

import "strings"

// User-facing validation messages.
const (
	EmptyItemError     = "You can't have an empty list item"
	DuplicateItemError = "You've already got this in your list"
)

// FieldErrors maps a form field name to its error messages. A nil or empty
// map means the input validated.
type FieldErrors map[string][]string

// Any reports whether any field failed validation.
func (e FieldErrors) Any() bool {
	return len(e) > 0
}

// Field returns the messages for a single field.
func (e FieldErrors) Field(name string) []string {
	return e[name]
}

// NewListIntent is a request to create a list from its first item's text.
// Owner is attached only when the submitter is authenticated.
type NewListIntent struct {
	Text  string
	Owner *string
}

// NewItemIntent is a request to create an item without a duplicate check,
// used for the first item of a brand-new list.
type NewItemIntent struct {
	Text string
}

// ExistingListItemIntent is a request to append an item to an existing
// list, subject to the list's uniqueness rule.
type ExistingListItemIntent struct {
	ListID uint
	Text   string
}

// Validate checks a NewListIntent. A new list is validated through its
// first item: the text must be non-blank, and no duplicate check applies
// because the list has no other items yet.
func (i NewListIntent) Validate() FieldErrors {
	return NewItemIntent{Text: i.Text}.Validate()
}

// Validate checks a NewItemIntent: text must be non-blank.
func (i NewItemIntent) Validate() FieldErrors {
	return checkText(i.Text, nil)
}

// Validate checks an ExistingListItemIntent against the target list's
// current item texts, supplied by the caller in display order.
func (i ExistingListItemIntent) Validate(existing []string) FieldErrors {
	return checkText(i.Text, existing)
}

func checkText(text string, existing []string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(text) == "" {
		errs["text"] = append(errs["text"], EmptyItemError)
		return errs
	}
	for _, t := range existing {
		if t == text {
			errs["text"] = append(errs["text"], DuplicateItemError)
			return errs
		}
	}
	return nil
}
