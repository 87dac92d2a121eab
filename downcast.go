// Package downcast contrasts two ways of reaching a capability through a
// shared abstraction.
//
// Dad carries no capability, so a caller holding a Dad has to narrow it to
// *Son before it can print. SecondDad declares Print itself, so every
// implementation is reached by ordinary dynamic dispatch.
package downcast

import (
	"fmt"
	"io"
)

// Dad is an abstraction with no capability of its own.
// Implementations embed DadBase to satisfy it.
type Dad interface {
	isDad()
}

// DadBase is embedded by every Dad implementation.
type DadBase struct{}

func (DadBase) isDad() {}

// Son is the only Dad that knows how to print.
type Son struct {
	DadBase
}

// Print writes "Son" followed by a newline.
func (s *Son) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Son"); err != nil {
		return fmt.Errorf("print Son: %w", err)
	}
	return nil
}

// SecondDad declares Print, so every implementation has to supply it.
type SecondDad interface {
	Print(w io.Writer) error
}

// SecondSon implements SecondDad.
type SecondSon struct{}

// Print writes "SecondSon" followed by a newline.
func (s *SecondSon) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "SecondSon"); err != nil {
		return fmt.Errorf("print SecondSon: %w", err)
	}
	return nil
}

var (
	_ Dad       = (*Son)(nil)
	_ SecondDad = (*SecondSon)(nil)
)

// NarrowPrint prints d by asserting it to *Son.
// The assertion is unchecked: any other Dad makes it panic with a
// *runtime.TypeAssertionError. Use CheckedPrint when the dynamic type is
// not known, or better, use a SecondDad and DispatchPrint.
func NarrowPrint(w io.Writer, d Dad) error {
	return d.(*Son).Print(w)
}

// CheckedPrint is NarrowPrint with a comma-ok assertion.
// A Dad that is not a *Son yields a *MismatchError.
func CheckedPrint(w io.Writer, d Dad) error {
	s, ok := d.(*Son)
	if !ok {
		return &MismatchError{Want: fmt.Sprintf("%T", s), Got: fmt.Sprintf("%T", d)}
	}
	return s.Print(w)
}

// DispatchPrint prints sd through the method its interface declares.
func DispatchPrint(w io.Writer, sd SecondDad) error {
	return sd.Print(w)
}
