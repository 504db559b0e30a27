package models

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateListName(t *testing.T) {
	existing := []List{{Id: 1, Name: "Groceries"}, {Id: 2, Name: "Work"}}

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", MsgListNameLength},
		{"only spaces", "   ", MsgListNameLength},
		{"too long", strings.Repeat("a", 101), MsgListNameLength},
		{"max length", strings.Repeat("a", 100), ""},
		{"multi-byte characters count once", strings.Repeat("é", 100), ""},
		{"single character", "x", ""},
		{"duplicate, other case", "groceries", MsgListNameUnique},
		{"duplicate with surrounding spaces", "  WORK ", MsgListNameUnique},
		{"duplicate under unicode case folding", "grocerie\u017f", MsgListNameUnique},
		{"new name", "Holidays", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListName(tt.input, existing)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, BadParameterError)
			message, ok := ValidationMessage(err)
			assert.True(t, ok)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestValidateListName_length_takes_precedence(t *testing.T) {
	long := strings.Repeat("a", 101)
	err := ValidateListName(long, []List{{Name: long}})
	message, _ := ValidationMessage(err)
	assert.Equal(t, MsgListNameLength, message)
}

func TestValidateTodoName(t *testing.T) {
	existing := []Todo{{Id: 1, ListId: 1, Name: "buy milk"}}

	assert.NoError(t, ValidateTodoName("walk the dog", existing))
	assert.NoError(t, ValidateTodoName("buy milk", nil))

	message, ok := ValidationMessage(ValidateTodoName("Buy Milk", existing))
	assert.True(t, ok)
	assert.Equal(t, MsgTodoNameUnique, message)

	message, ok = ValidationMessage(ValidateTodoName("", existing))
	assert.True(t, ok)
	assert.Equal(t, MsgTodoNameLength, message)
}

func TestValidationMessage_wrapped(t *testing.T) {
	err := errors.Wrap(NewValidationError("boom"), "while creating")
	message, ok := ValidationMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "boom", message)

	_, ok = ValidationMessage(NotFoundError)
	assert.False(t, ok)
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Groceries", "GROCERIES"))
	assert.True(t, SameName("Groceries", "grocerie\u017f"))
	assert.False(t, SameName("Groceries", "Grocery"))
}
