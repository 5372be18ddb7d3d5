package names

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jschaf/bibname/model"
)

func entryWithFields(fields ...*model.Field) *model.Entry {
	return &model.Entry{
		EntryType: "article",
		Key:       "articleKey",
		Raw:       "irrelevant-for-this-test",
		Fields:    fields,
	}
}

func field(key string, v model.Value) *model.Field {
	return &model.Field{Key: key, Value: v}
}

func assertInplaceRespected(t *testing.T, inplace bool, input, output *model.Entry) {
	t.Helper()
	same := input == output
	if inplace && !same {
		t.Errorf("allow_inplace_modification=true but transform did not reuse the original entry")
	}
	if !inplace && same {
		t.Errorf("allow_inplace_modification=false but transform reused the original entry")
	}
}

func TestSeparateCoAuthors(t *testing.T) {
	for _, inplace := range []bool{true, false} {
		t.Run(map[bool]string{true: "inplace", false: "copy"}[inplace], func(t *testing.T) {
			input := entryWithFields(
				field("title", model.StringValue("A Test and Some More")),
				field("author", model.StringValue("A. Author and B. Author")),
				field("editor", model.StringValue("C. Editor and D. Editor")),
			)

			lib := SeparateCoAuthors{AllowInplaceModification: inplace}.Transform(model.NewLibraryFromEntries([]*model.Entry{input}))

			entries := lib.Entries()
			if len(entries) != 1 {
				t.Fatalf("Entries() = %d, want 1", len(entries))
			}
			got := entries[0]

			titleField, _ := got.FieldByKey("title")
			if titleField.Value != model.StringValue("A Test and Some More") {
				t.Errorf("title field mutated: %v", titleField.Value)
			}
			authorField, _ := got.FieldByKey("author")
			if diff := cmp.Diff(model.PersonList{"A. Author", "B. Author"}, authorField.Value); diff != "" {
				t.Errorf("author field mismatch (-want +got):\n%s", diff)
			}
			editorField, _ := got.FieldByKey("editor")
			if diff := cmp.Diff(model.PersonList{"C. Editor", "D. Editor"}, editorField.Value); diff != "" {
				t.Errorf("editor field mismatch (-want +got):\n%s", diff)
			}

			assertInplaceRespected(t, inplace, input, got)
		})
	}
}

func TestMergeCoAuthors(t *testing.T) {
	for _, inplace := range []bool{true, false} {
		t.Run(map[bool]string{true: "inplace", false: "copy"}[inplace], func(t *testing.T) {
			input := entryWithFields(
				field("title", model.StringValue("A Test and Some More")),
				field("author", model.PersonList{"A. Author", "B. Author"}),
				field("editor", model.PersonList{"C. Editor", "D. Editor"}),
			)

			lib := MergeCoAuthors{AllowInplaceModification: inplace}.Transform(model.NewLibraryFromEntries([]*model.Entry{input}))

			got := lib.Entries()[0]
			authorField, _ := got.FieldByKey("author")
			if authorField.Value != model.StringValue("A. Author and B. Author") {
				t.Errorf("author field = %v, want %q", authorField.Value, "A. Author and B. Author")
			}
			editorField, _ := got.FieldByKey("editor")
			if editorField.Value != model.StringValue("C. Editor and D. Editor") {
				t.Errorf("editor field = %v, want %q", editorField.Value, "C. Editor and D. Editor")
			}

			assertInplaceRespected(t, inplace, input, got)
		})
	}
}

func TestSplitNameParts(t *testing.T) {
	for _, inplace := range []bool{true, false} {
		t.Run(map[bool]string{true: "inplace", false: "copy"}[inplace], func(t *testing.T) {
			input := entryWithFields(
				field("title", model.StringValue("A Test and Some More")),
				field("author", model.PersonList{"Amy Author", "Ben Bystander"}),
			)

			lib := SplitNameParts{AllowInplaceModification: inplace}.Transform(model.NewLibraryFromEntries([]*model.Entry{input}))

			got := lib.Entries()[0]
			authorField, _ := got.FieldByKey("author")
			want := model.NamePartsList{
				{First: []string{"Amy"}, Last: []string{"Author"}},
				{First: []string{"Ben"}, Last: []string{"Bystander"}},
			}
			if diff := cmp.Diff(want, authorField.Value); diff != "" {
				t.Errorf("author field mismatch (-want +got):\n%s", diff)
			}

			assertInplaceRespected(t, inplace, input, got)
		})
	}
}

func TestMergeNameParts(t *testing.T) {
	for _, inplace := range []bool{true, false} {
		t.Run(map[bool]string{true: "inplace", false: "copy"}[inplace], func(t *testing.T) {
			input := entryWithFields(
				field("title", model.StringValue("A Test and Some More")),
				field("author", model.NamePartsList{
					{First: []string{"Amy"}, Last: []string{"Author"}},
					{First: []string{"Ben"}, Last: []string{"Bystander"}},
				}),
			)

			lib := MergeNameParts{AllowInplaceModification: inplace, LastNameFirst: false}.
				Transform(model.NewLibraryFromEntries([]*model.Entry{input}))

			got := lib.Entries()[0]
			authorField, _ := got.FieldByKey("author")
			if diff := cmp.Diff(model.PersonList{"Amy Author", "Ben Bystander"}, authorField.Value); diff != "" {
				t.Errorf("author field mismatch (-want +got):\n%s", diff)
			}

			assertInplaceRespected(t, inplace, input, got)
		})
	}
}

func TestSplitNamePartsQuarantinesMalformedNames(t *testing.T) {
	tests := []struct {
		name   string
		person string
		reason string
	}{
		{"trailing comma", "BB,", model.ReasonTrailingComma},
		{"too many commas", "AA, BB, CC, DD", model.ReasonTooManyCommas},
		{"unterminated brace", "AA {BB CC", model.ReasonUnterminatedBrace},
		{"unmatched close brace", "AA BB CC}", model.ReasonUnmatchedCloseBrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := entryWithFields(
				field("title", model.StringValue("A Test and Some More")),
				field("author", model.PersonList{tt.person}),
			)

			lib := SplitNameParts{}.Transform(model.NewLibraryFromEntries([]*model.Entry{input}))

			if len(lib.Entries()) != 0 {
				t.Fatalf("Entries() = %d, want 0 (entry should be quarantined)", len(lib.Entries()))
			}
			failed := lib.FailedBlocks()
			if len(failed) != 1 {
				t.Fatalf("FailedBlocks() = %d, want 1", len(failed))
			}
			if failed[0].Block != input {
				t.Errorf("FailedBlocks()[0].Block is not the original, untouched entry")
			}
			var invalid *model.InvalidNameError
			if !errors.As(failed[0].Err, &invalid) || invalid.Reason != tt.reason {
				t.Errorf("FailedBlocks()[0].Err = %v, want reason %q", failed[0].Err, tt.reason)
			}
		})
	}
}

func TestIsNameField(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"author", true},
		{"Author", true},
		{"AUTHOR", true},
		{"editor", true},
		{"Editor", true},
		{"title", false},
		{"year", false},
	}
	for _, tt := range tests {
		if got := isNameField(tt.key); got != tt.want {
			t.Errorf("isNameField(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
