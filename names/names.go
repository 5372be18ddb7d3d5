// Package names implements the four field transform passes that apply the
// namelist package's co-person splitting and single-name parsing (and their
// inverses) to the author and editor fields of a bibliography library.
package names

import (
	"fmt"
	"strings"

	"github.com/jschaf/bibname/model"
	"github.com/jschaf/bibname/namelist"
)

func isNameField(key string) bool {
	return strings.EqualFold(key, "author") || strings.EqualFold(key, "editor")
}

// transformEntries is the shared shape of all four passes: walk every entry
// block of lib, apply fn to the author/editor fields of a per-pass target
// entry (the original entry in place, or a deep copy), and quarantine any
// entry whose fn returns an error into a failed block carrying the
// original, untouched entry. Every non-entry block passes through
// unchanged, and entry order is preserved.
func transformEntries(lib *model.Library, allowInplaceModification bool, fn func(*model.Entry) error) *model.Library {
	blocks := lib.Blocks()
	out := make([]*model.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind != model.BlockEntry {
			out = append(out, b)
			continue
		}
		target := b.Entry
		if !allowInplaceModification {
			target = b.Entry.DeepCopy()
		}
		if err := fn(target); err != nil {
			out = append(out, model.NewFailedBlock(b.Entry, err))
			continue
		}
		if allowInplaceModification {
			out = append(out, b)
		} else {
			out = append(out, model.NewEntryBlock(target))
		}
	}
	return model.NewLibrary(out)
}

// SeparateCoAuthors splits every author/editor field's string value into a
// PersonList via namelist.SplitPersons.
type SeparateCoAuthors struct {
	AllowInplaceModification bool
}

func (p SeparateCoAuthors) Transform(lib *model.Library) *model.Library {
	return transformEntries(lib, p.AllowInplaceModification, func(e *model.Entry) error {
		for _, f := range e.Fields {
			if !isNameField(f.Key) {
				continue
			}
			sv, ok := f.Value.(model.StringValue)
			if !ok {
				continue
			}
			f.Value = model.PersonList(namelist.SplitPersons(string(sv)))
		}
		return nil
	})
}

// MergeCoAuthors joins every author/editor field's PersonList value back
// into a single string, the inverse of SeparateCoAuthors.
type MergeCoAuthors struct {
	AllowInplaceModification bool
}

func (p MergeCoAuthors) Transform(lib *model.Library) *model.Library {
	return transformEntries(lib, p.AllowInplaceModification, func(e *model.Entry) error {
		for _, f := range e.Fields {
			if !isNameField(f.Key) {
				continue
			}
			pl, ok := f.Value.(model.PersonList)
			if !ok {
				continue
			}
			f.Value = model.StringValue(namelist.JoinPersons(pl))
		}
		return nil
	})
}

// SplitNameParts decomposes every author/editor field's PersonList value
// into a NamePartsList, parsing each person string in strict mode. An entry
// containing a malformed person string is quarantined into a failed block
// rather than partially transformed.
type SplitNameParts struct {
	AllowInplaceModification bool
}

func (p SplitNameParts) Transform(lib *model.Library) *model.Library {
	return transformEntries(lib, p.AllowInplaceModification, func(e *model.Entry) error {
		pending := make(map[*model.Field]model.NamePartsList)
		for _, f := range e.Fields {
			if !isNameField(f.Key) {
				continue
			}
			pl, ok := f.Value.(model.PersonList)
			if !ok {
				continue
			}
			parts := make(model.NamePartsList, len(pl))
			for i, person := range pl {
				np, err := namelist.ParseName(person, true)
				if err != nil {
					return fmt.Errorf("split name parts for field %q: %w", f.Key, err)
				}
				parts[i] = np
			}
			pending[f] = parts
		}
		for f, parts := range pending {
			f.Value = parts
		}
		return nil
	})
}

// MergeNameParts joins every author/editor field's NamePartsList value back
// into a PersonList via namelist.JoinName, the inverse of SplitNameParts.
type MergeNameParts struct {
	AllowInplaceModification bool
	LastNameFirst            bool
}

func (p MergeNameParts) Transform(lib *model.Library) *model.Library {
	return transformEntries(lib, p.AllowInplaceModification, func(e *model.Entry) error {
		for _, f := range e.Fields {
			if !isNameField(f.Key) {
				continue
			}
			npl, ok := f.Value.(model.NamePartsList)
			if !ok {
				continue
			}
			persons := make(model.PersonList, len(npl))
			for i, np := range npl {
				persons[i] = namelist.JoinName(np, p.LastNameFirst)
			}
			f.Value = persons
		}
		return nil
	})
}
