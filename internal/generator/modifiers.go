package generator

import "strings"

// translateTypeModifiers turns a container's modifier list into stereotype
// annotations. Visibility keywords and abstract are consumed (visibility is
// never shown on containers; abstract is folded into the keyword by the
// caller); every other token passes through verbatim as <<token>>, order
// preserved, duplicates untouched. Non-empty output carries one trailing
// space so the caller can concatenate it directly before the brace.
func translateTypeModifiers(modifiers []string) string {
	var sb strings.Builder
	for _, m := range modifiers {
		switch m {
		case "public", "private", "protected", "internal", "abstract":
			// dropped
		default:
			sb.WriteString("<<" + m + ">>")
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// translateMemberModifiers maps member modifier tokens to diagram notation.
// Each token is mapped independently, first match wins, order preserved;
// unknown keywords degrade to <<token>> rather than failing. Non-empty
// output carries one trailing space.
func translateMemberModifiers(modifiers []string) string {
	var sb strings.Builder
	for _, m := range modifiers {
		switch m {
		case "public":
			sb.WriteString("+")
		case "private":
			sb.WriteString("-")
		case "protected":
			sb.WriteString("#")
		case "abstract":
			sb.WriteString("{abstract}")
		case "static":
			sb.WriteString("{static}")
		default:
			sb.WriteString("<<" + m + ">>")
		}
		sb.WriteString(" ")
	}
	return sb.String()
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}
