package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-set/v2"
	"golang.org/x/text/cases"

	"github.com/checkmarble/marble-todos/pure_utils"
)

const (
	NameMinLength = 1
	NameMaxLength = 100
)

const (
	MsgListNameLength = "List name must be between 1 and 100 characters."
	MsgListNameUnique = "List name must be unique."
	MsgTodoNameLength = "Todo must be between 1 and 100 characters."
	MsgTodoNameUnique = "Todo must be unique."
)

// validator counts runes for strings, so multi-byte names are measured in characters
var (
	validate      = validator.New()
	nameLengthTag = fmt.Sprintf("min=%d,max=%d", NameMinLength, NameMaxLength)
)

func hasValidNameLength(name string) bool {
	return validate.Var(name, nameLengthTag) == nil
}

// Casers keep state, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// SameName compares names with Unicode case folding, the rule used for uniqueness.
func SameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

func nameTaken(name string, siblings []string) bool {
	taken := set.From(pure_utils.Map(siblings, foldName))
	return taken.Contains(foldName(name))
}

// ValidateListName checks a list name against all the existing lists. The length rule takes
// precedence over the uniqueness rule.
func ValidateListName(name string, existingLists []List) error {
	name = strings.TrimSpace(name)
	if !hasValidNameLength(name) {
		return NewValidationError(MsgListNameLength)
	}
	names := pure_utils.Map(existingLists, func(l List) string { return l.Name })
	if nameTaken(name, names) {
		return NewValidationError(MsgListNameUnique)
	}
	return nil
}

// ValidateTodoName checks a todo name against the todos of its list.
func ValidateTodoName(name string, existingTodos []Todo) error {
	name = strings.TrimSpace(name)
	if !hasValidNameLength(name) {
		return NewValidationError(MsgTodoNameLength)
	}
	names := pure_utils.Map(existingTodos, func(t Todo) string { return t.Name })
	if nameTaken(name, names) {
		return NewValidationError(MsgTodoNameUnique)
	}
	return nil
}
