package properties

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`=`, `\=`,
	"\n", `\n`,
	"\r", `\r`,
)

// Escape escapes backslashes, '=', newlines and carriage returns in a
// property value.
func Escape(v string) string {
	return escaper.Replace(v)
}

// Unescape reverses Escape. Backslash sequences other than \\, \=, \n
// and \r are kept as they are.
func Unescape(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i+1 == len(v) {
			b.WriteByte(c)
			continue
		}
		i++
		switch v[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '=':
			b.WriteByte('=')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// splitLine splits a line on its unescaped '=' characters.
func splitLine(line string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '=':
			parts = append(parts, line[start:i])
			start = i + 1
		}
	}
	return append(parts, line[start:])
}

// KeyValue splits a properties line into its trimmed key and unescaped
// value. ok is false for blank lines, comments and lines without exactly
// one unescaped '='.
func KeyValue(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' || line[0] == '!' {
		return "", "", false
	}
	parts := splitLine(line)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), Unescape(strings.TrimSpace(parts[1])), true
}
