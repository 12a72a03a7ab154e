package shape

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownKind indicates that a textual tag does not name any Kind.
var ErrUnknownKind = errors.New("shape: unknown kind")

// Kind discriminates between the Shape variants.
type Kind string

const (
	// KindRectangle selects Rectangle.
	KindRectangle Kind = "rectangle"
	// KindSquare selects Square.
	KindSquare Kind = "square"
	// KindCircle selects Circle.
	KindCircle Kind = "circle"
)

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindSquare, KindCircle}
}

// ParseKind maps a case-insensitive tag ("Circle", "SQUARE", ...) to a Kind.
func ParseKind(tag string) (Kind, error) {
	folded := Kind(cases.Fold().String(strings.TrimSpace(tag)))
	for _, k := range Kinds() {
		if k == folded {
			return k, nil
		}
	}

	return "", fmt.Errorf("ParseKind(%q): %w", tag, ErrUnknownKind)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Title returns the display form of k ("Rectangle", "Square", ...).
func (k Kind) Title() string {
	return cases.Title(language.English).String(string(k))
}

// Shape is a drawable variant.
type Shape interface {
	// Name is the static display name of the variant.
	Name() string
	// Draw writes the variant's drawing line to w.
	Draw(w io.Writer) error
}

// Color is a fillable variant.
type Color interface {
	// Name is the static display name of the colour ("Red", ...).
	Name() string
	// Fill writes the colour's fill line to w.
	Fill(w io.Writer) error
}
