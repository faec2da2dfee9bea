package parser

import "strings"

// isDateNumFmt reports whether a built-in number format id or a custom
// format code formats serials as dates or times.
func isDateNumFmt(id int, custom string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if custom == "" {
		return false
	}
	return hasDateTokens(custom)
}

// hasDateTokens scans a format code for y, m, d, h or s outside of quoted
// literals, escapes and bracketed colour/condition sections. Elapsed time
// sections like [h] count as time.
func hasDateTokens(code string) bool {
	code = strings.ToLower(code)
	for i := 0; i < len(code); i++ {
		switch ch := code[i]; ch {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			section := code[i+1 : i+1+end]
			if strings.Trim(section, "hms") == "" {
				return true
			}
			i += end + 1
		case 'y', 'm', 'd', 'h', 's':
			return true
		}
	}
	return false
}
