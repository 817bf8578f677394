package product

import (
	"errors"
	"fmt"
)

// IdentifierKind selects which secondary key a lookup resolves through.
type IdentifierKind string

const (
	ByID   IdentifierKind = "id"
	ByName IdentifierKind = "name"
	BySKU  IdentifierKind = "sku"
)

var ErrInvalidIdentifierType = errors.New("invalid identifier type")

// Identifier is a tagged lookup key. Name lookups resolve to the first
// product whose name contains the value, case-insensitively; id and sku are
// exact matches.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

func ID(v string) Identifier   { return Identifier{Kind: ByID, Value: v} }
func Name(v string) Identifier { return Identifier{Kind: ByName, Value: v} }
func SKU(v string) Identifier  { return Identifier{Kind: BySKU, Value: v} }

// ParseIdentifier builds an Identifier from the string pair callers supply at
// the tool boundary. An empty kind defaults to name lookup.
func ParseIdentifier(value, kind string) (Identifier, error) {
	switch IdentifierKind(kind) {
	case ByID, ByName, BySKU:
		return Identifier{Kind: IdentifierKind(kind), Value: value}, nil
	case "":
		return Identifier{Kind: ByName, Value: value}, nil
	}
	return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifierType, kind)
}

func (i Identifier) String() string {
	return fmt.Sprintf("%s=%q", i.Kind, i.Value)
}
