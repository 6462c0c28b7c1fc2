package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"token-bridge/core/tokens"
)

// VariableKind is the resolved type of a design-tool variable.
type VariableKind string

const (
	VariableColor   VariableKind = "COLOR"
	VariableFloat   VariableKind = "FLOAT"
	VariableString  VariableKind = "STRING"
	VariableBoolean VariableKind = "BOOLEAN"
)

// TokenKind maps a variable kind onto the token kind it is exported as.
func (k VariableKind) TokenKind() tokens.Kind {
	switch k {
	case VariableColor:
		return tokens.KindColor
	case VariableFloat:
		return tokens.KindDimension
	case VariableString:
		return tokens.KindString
	case VariableBoolean:
		return tokens.KindBoolean
	default:
		return tokens.Kind(strings.ToLower(string(k)))
	}
}

// Variable is one entry of a live design-tool variable snapshot.
type Variable struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Kind           VariableKind `json:"kind"`
	Description    string       `json:"description,omitempty"`
	CollectionName string       `json:"collectionName"`
	CollectionID   string       `json:"collectionId,omitempty"`
	Scopes         []string     `json:"scopes,omitempty"`
	ValuesByMode   ModeValues   `json:"valuesByMode"`
	DefaultValue   any          `json:"defaultValue"`
	// AliasName is the referenced variable name when the value is an alias.
	AliasName string `json:"aliasName,omitempty"`
}

// Style is a text or effect style captured alongside the variables.
// Styles are carried for export and presentation; they are not classified.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       any    `json:"value,omitempty"`
}

// Snapshot is a point-in-time export of the design tool's variable store.
type Snapshot struct {
	Variables    []Variable `json:"variables"`
	TextStyles   []Style    `json:"textStyles,omitempty"`
	EffectStyles []Style    `json:"effectStyles,omitempty"`
}

// Status is the classification of one comparison item.
type Status string

const (
	StatusSynced       Status = "synced"
	StatusNeedsSync    Status = "needs-sync"
	StatusVariableOnly Status = "variable-only"
	StatusTokenOnly    Status = "token-only"
)

// Statuses lists every status in presentation order.
var Statuses = []Status{StatusSynced, StatusNeedsSync, StatusVariableOnly, StatusTokenOnly}

// DisplayValues holds the rendered values shown next to an item.
type DisplayValues struct {
	// Variable is the variable value used for comparison.
	Variable string `json:"variable,omitempty"`
	// Token is the token value used for comparison.
	Token string `json:"token,omitempty"`
	// Modes holds the variable value in every mode.
	Modes map[string]string `json:"modes,omitempty"`
}

// Item is one classified entry. At least one of Variable and Token is set.
type Item struct {
	ID            string        `json:"id"`
	Variable      *Variable     `json:"variable,omitempty"`
	Token         *tokens.Token `json:"token,omitempty"`
	MatchKey      string        `json:"match_key"`
	Collection    string        `json:"collection"`
	Status        Status        `json:"status"`
	DisplayValues DisplayValues `json:"display_values"`
	Kind          tokens.Kind   `json:"kind"`
}

// Summary counts items per status.
type Summary struct {
	Total        int `json:"total"`
	Synced       int `json:"synced"`
	NeedsSync    int `json:"needs_sync"`
	VariableOnly int `json:"variable_only"`
	TokenOnly    int `json:"token_only"`
}

// Count returns the number of items with status s.
func (s Summary) Count(status Status) int {
	switch status {
	case StatusSynced:
		return s.Synced
	case StatusNeedsSync:
		return s.NeedsSync
	case StatusVariableOnly:
		return s.VariableOnly
	case StatusTokenOnly:
		return s.TokenOnly
	default:
		return 0
	}
}

func (s *Summary) add(status Status) {
	s.Total++
	switch status {
	case StatusSynced:
		s.Synced++
	case StatusNeedsSync:
		s.NeedsSync++
	case StatusVariableOnly:
		s.VariableOnly++
	case StatusTokenOnly:
		s.TokenOnly++
	}
}

// Result is the output of Compare.
type Result struct {
	Items       []Item   `json:"items"`
	Summary     Summary  `json:"summary"`
	Collections []string `json:"collections"`
	Modes       []string `json:"modes"`
	// Mode is the mode the comparison actually used.
	Mode string `json:"mode"`
	// Duplicates lists match keys claimed by more than one input on a side.
	Duplicates []string `json:"duplicates,omitempty"`
}

// ErrDuplicateMatchKey is matched by DuplicateKeyError.
var ErrDuplicateMatchKey = errors.New("duplicate match key")

// DuplicateKeyError reports match keys shared by several variables or tokens.
type DuplicateKeyError struct {
	Keys []string
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate match keys: %s", strings.Join(e.Keys, ", "))
}

// Unwrap allows errors.Is(err, ErrDuplicateMatchKey).
func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateMatchKey
}
