// Package bibname re-exports the name-parsing core's public surface: the
// Library/Entry/Field data model and the four field transform passes, the
// single import most consumers need.
package bibname

import (
	"github.com/jschaf/bibname/model"
	"github.com/jschaf/bibname/names"
)

type (
	Library       = model.Library
	Block         = model.Block
	BlockKind     = model.BlockKind
	Entry         = model.Entry
	Field         = model.Field
	FailedBlock   = model.FailedBlock
	NameParts     = model.NameParts
	Value         = model.Value
	StringValue   = model.StringValue
	PersonList    = model.PersonList
	NamePartsList = model.NamePartsList

	InvalidNameError = model.InvalidNameError
)

var (
	NewLibrary            = model.NewLibrary
	NewLibraryFromEntries = model.NewLibraryFromEntries
	NewEntryBlock         = model.NewEntryBlock
	NewFailedBlock        = model.NewFailedBlock
)

type (
	SeparateCoAuthors = names.SeparateCoAuthors
	MergeCoAuthors    = names.MergeCoAuthors
	SplitNameParts    = names.SplitNameParts
	MergeNameParts    = names.MergeNameParts
)

// Pipeline applies SeparateCoAuthors followed by SplitNameParts: the
// canonical forward transformation carrying author/editor fields from a
// raw string to parsed NameParts records.
func Pipeline(lib *Library, allowInplaceModification bool) *Library {
	lib = names.SeparateCoAuthors{AllowInplaceModification: allowInplaceModification}.Transform(lib)
	lib = names.SplitNameParts{AllowInplaceModification: allowInplaceModification}.Transform(lib)
	return lib
}

// ReversePipeline applies MergeNameParts followed by MergeCoAuthors: the
// inverse of Pipeline, carrying parsed NameParts records back to a single
// raw string per field.
func ReversePipeline(lib *Library, allowInplaceModification, lastNameFirst bool) *Library {
	lib = names.MergeNameParts{AllowInplaceModification: allowInplaceModification, LastNameFirst: lastNameFirst}.Transform(lib)
	lib = names.MergeCoAuthors{AllowInplaceModification: allowInplaceModification}.Transform(lib)
	return lib
}
