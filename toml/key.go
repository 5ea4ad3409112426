package toml

import "strings"

// isBareKeyByte reports whether b is a legal bare-key character: a
// letter, digit, '-', or '_'.
func isBareKeyByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '_'
}

func isAllBareKeyBytes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBareKeyByte(s[i]) {
			return false
		}
	}
	return true
}

// canonicalizeKey trims ASCII space/tab around s, then: if s is quoted
// (matching leading/trailing " or '), inspects the inner trimmed text and
// returns it bare if that would be a non-empty, all-bare-key string;
// otherwise returns the quoted form unchanged. Unquoted input is
// returned as-is if it is a non-empty bare key, else InvalidKey.
func canonicalizeKey(s string) (string, error) {
	s = strings.Trim(s, " \t")
	if s == "" {
		return "", &ParseError{Kind: ErrInvalidKey, Message: "empty key"}
	}

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && last == first {
			inner := strings.Trim(s[1:len(s)-1], " \t")
			if isAllBareKeyBytes(inner) {
				return inner, nil
			}
			return s, nil
		}
	}

	if isAllBareKeyBytes(s) {
		return s, nil
	}
	return "", &ParseError{Kind: ErrInvalidKey, Message: "invalid key: " + s}
}

// logicalKeyText returns the semantic text of a canonical key (see
// canonicalizeKey above): a bare key is returned as-is. A quoted key
// has its surrounding quote bytes stripped; a double-quoted key also
// has its escape sequences decoded, while a single-quoted (literal)
// key's inner text is taken verbatim. Encoders that must emit a key's
// logical value rather than its literal TOML spelling — JSON object
// keys, ToUntyped's map keys — use this instead of the raw stored form.
func logicalKeyText(k string) string {
	if len(k) < 2 {
		return k
	}
	first, last := k[0], k[len(k)-1]
	if (first != '"' && first != '\'') || last != first {
		return k
	}
	inner := k[1 : len(k)-1]
	if first == '\'' {
		return inner
	}
	return decodeKeyEscapes(inner)
}

// decodeKeyEscapes decodes basic-string escapes in the inner text of a
// double-quoted key. The text was already validated as a balanced
// quoted span by splitDottedKey, so a malformed escape here just passes
// its backslash through rather than erroring.
func decodeKeyEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			if v, ok := decodeHexRune(s, i+1, 4); ok {
				b.WriteRune(v)
				i += 4
				continue
			}
			b.WriteByte('\\')
			b.WriteByte('u')
		case 'U':
			if v, ok := decodeHexRune(s, i+1, 8); ok {
				b.WriteRune(v)
				i += 8
				continue
			}
			b.WriteByte('\\')
			b.WriteByte('U')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// decodeHexRune reads n hex digits from s starting at start and returns
// the rune they encode, or ok=false if out of bounds or non-hex.
func decodeHexRune(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	var v rune
	for i := 0; i < n; i++ {
		c := s[start+i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		v = v*16 + d
	}
	return v, true
}

// splitDottedKey splits s on '.' while ignoring dots inside matched
// quoted spans ("..." or '...'). Each returned part is trimmed of
// surrounding space/tab but is otherwise unprocessed; the caller
// canonicalizes each part separately.
func splitDottedKey(s string) ([]string, error) {
	parts := make([]string, 0, 5)
	var cur strings.Builder
	quote := byte(0)
	escaped := false

	flush := func() {
		parts = append(parts, strings.Trim(cur.String(), " \t"))
		cur.Reset()
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			cur.WriteByte(c)
			if quote == '"' && escaped {
				escaped = false
				continue
			}
			if quote == '"' && c == '\\' {
				escaped = true
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
			cur.WriteByte(c)
		case '.':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, &ParseError{Kind: ErrInvalidKey, Message: "unterminated quoted key segment"}
	}
	flush()
	return parts, nil
}
