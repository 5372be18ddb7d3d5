package namelist

import (
	"strings"

	"github.com/jschaf/bibname/model"
)

// JoinName is the inverse of ParseName: it reconstructs a display string
// from a NameParts record. With lastNameFirst false, first/von/last/jr are
// joined with single spaces in that order, omitting empty lists. With
// lastNameFirst true, it emits "von last, jr, first", omitting jr (and its
// comma) when empty.
func JoinName(np model.NameParts, lastNameFirst bool) string {
	if !lastNameFirst {
		var parts []string
		parts = append(parts, np.First...)
		parts = append(parts, np.Von...)
		parts = append(parts, np.Last...)
		parts = append(parts, np.Jr...)
		return strings.Join(parts, " ")
	}

	var vonLast []string
	vonLast = append(vonLast, np.Von...)
	vonLast = append(vonLast, np.Last...)

	var groups []string
	if len(vonLast) > 0 {
		groups = append(groups, strings.Join(vonLast, " "))
	}
	if len(np.Jr) > 0 {
		groups = append(groups, strings.Join(np.Jr, " "))
	}
	if len(np.First) > 0 {
		groups = append(groups, strings.Join(np.First, " "))
	}
	return strings.Join(groups, ", ")
}
