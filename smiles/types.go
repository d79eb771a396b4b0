// Package smiles: sentinel errors and shared parser constants.
package smiles

import "errors"

// Sentinel errors for SMILES parsing.
var (
	// ErrSyntax indicates an unparseable character or malformed token.
	ErrSyntax = errors.New("smiles: syntax error")

	// ErrUnclosedRing indicates a ring-closure digit that was opened but
	// never paired before the end of input.
	ErrUnclosedRing = errors.New("smiles: unclosed ring bond")

	// ErrUnclosedBranch indicates unbalanced parentheses.
	ErrUnclosedBranch = errors.New("smiles: unbalanced branch parentheses")

	// ErrEmptyInput indicates an empty SMILES string.
	ErrEmptyInput = errors.New("smiles: empty input")
)

// hPlaceholder stands in for a bracket atom's implicit hydrogen inside the
// written neighbor order until parity normalization moves it to the end.
const hPlaceholder = -1

// ringPlaceholder reserves a slot in the written neighbor order for a ring
// bond whose partner atom is not known yet.
const ringPlaceholder = -2
