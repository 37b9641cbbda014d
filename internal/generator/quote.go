package generator

import "strings"

// Quote renders s as a C++ string literal. Backslash, the quote character,
// and embedded newlines are escaped, along with the configured
// interpolation marker when one is set. Decoding the literal in the target
// language yields s exactly.
func (g *Generator) Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if g.cfg.InterpMarker != "" && strings.ContainsRune(g.cfg.InterpMarker, r) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
