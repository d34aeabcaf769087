package partition

import "errors"

// Sentinel errors returned by the partition package.
var (
	// ErrEmptyTaxon indicates that an empty string was used as a taxon identifier.
	ErrEmptyTaxon = errors.New("partition: taxon identifier is empty")

	// ErrDuplicateTaxon indicates that the taxon list contains the same identifier twice.
	ErrDuplicateTaxon = errors.New("partition: duplicate taxon in taxon list")

	// ErrEmptyGroup indicates that a partition group with no taxa was supplied.
	ErrEmptyGroup = errors.New("partition: group has no taxa")

	// ErrUnknownCharacter indicates that a character is not present in the table.
	ErrUnknownCharacter = errors.New("partition: unknown character")
)
