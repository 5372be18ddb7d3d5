// Package model declares the data types that cross the boundary between the
// name-parsing core and its surrounding collaborators: libraries, blocks,
// entries, fields, and the three-shape field value a field progresses
// through as the namelist/names passes run over it.
package model

// Value is the tagged-union value a Field holds. A field value inhabits
// exactly one of three shapes over its lifecycle: a raw string, a list of
// person strings, or a list of parsed NameParts records. Passes in the names
// package move a value from one shape to the next; consuming the wrong shape
// is a programming error, not a recoverable condition.
type Value interface {
	// Clone returns a deep copy of the value.
	Clone() Value
	valueNode()
}

// StringValue is a field value holding a single raw string, the shape of an
// author/editor field before SeparateCoAuthors runs, or after MergeCoAuthors.
type StringValue string

func (v StringValue) Clone() Value { return v }
func (StringValue) valueNode()     {}

// PersonList is a field value holding one string per person, the shape of an
// author/editor field after SeparateCoAuthors and before SplitNameParts.
type PersonList []string

func (v PersonList) Clone() Value {
	out := make(PersonList, len(v))
	copy(out, v)
	return out
}
func (PersonList) valueNode() {}

// NamePartsList is a field value holding one NameParts record per person, the
// shape of an author/editor field after SplitNameParts and before
// MergeNameParts.
type NamePartsList []NameParts

func (v NamePartsList) Clone() Value {
	out := make(NamePartsList, len(v))
	for i, np := range v {
		out[i] = np.Clone()
	}
	return out
}
func (NamePartsList) valueNode() {}

// NameParts is the four-way decomposition of a single person string produced
// by the single-name splitter: First, Von, Last, Jr, each an ordered list of
// tokens. The zero value (all four lists nil) represents "no parseable
// name" and is itself a legal result, not an error.
type NameParts struct {
	First []string
	Von   []string
	Last  []string
	Jr    []string
}

// NP builds a NameParts from first/von/last/jr word lists. It exists so
// tests can write NameParts literals without naming every struct field.
func NP(first, von, last, jr []string) NameParts {
	return NameParts{First: first, Von: von, Last: last, Jr: jr}
}

// Clone returns a NameParts whose four lists share no backing array with np.
func (np NameParts) Clone() NameParts {
	return NameParts{
		First: cloneStrings(np.First),
		Von:   cloneStrings(np.Von),
		Last:  cloneStrings(np.Last),
		Jr:    cloneStrings(np.Jr),
	}
}

// IsEmpty reports whether np carries no tokens in any of its four lists.
func (np NameParts) IsEmpty() bool {
	return len(np.First) == 0 && len(np.Von) == 0 && len(np.Last) == 0 && len(np.Jr) == 0
}

// Equal reports whether np and other hold the same tokens in the same
// positions in all four lists. Written out explicitly, matching the
// teacher's preference for hand-rolled equality over reflect.DeepEqual.
func (np NameParts) Equal(other NameParts) bool {
	return stringsEqual(np.First, other.First) &&
		stringsEqual(np.Von, other.Von) &&
		stringsEqual(np.Last, other.Last) &&
		stringsEqual(np.Jr, other.Jr)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneStrings(xs []string) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, len(xs))
	copy(out, xs)
	return out
}
