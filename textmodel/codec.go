package textmodel

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DeserializationError reports a stored table that could not be parsed
type DeserializationError struct {
	Line   int
	Reason string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("error decoding table at line %d: %s", e.Line, e.Reason)
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// EncodeTable renders a table as sorted "key<TAB>count" lines.
// Backslash, tab, newline and carriage return in string keys are backslash escaped.
func EncodeTable[M ~map[K]int, K Key](table M) string {
	keys := make([]K, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[K])

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(encodeKey(k))
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(table[k]))
		b.WriteByte('\n')
	}
	return b.String()
}

func encodeKey[K Key](k K) string {
	switch v := any(k).(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return keyEscaper.Replace(v)
	}
	panic("unreachable")
}

// DecodeTable parses text produced by EncodeTable. Any malformed line fails the
// whole decode with a *DeserializationError.
func DecodeTable[K Key](text string) (map[K]int, error) {
	table := make(map[K]int)
	if text == "" {
		return table, nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lineNo := i + 1
		rawKey, rawCount, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, &DeserializationError{Line: lineNo, Reason: "missing tab separator"}
		}
		if strings.Contains(rawCount, "\t") {
			return nil, &DeserializationError{Line: lineNo, Reason: "unescaped tab in entry"}
		}

		key, err := decodeKey[K](rawKey)
		if err != nil {
			return nil, &DeserializationError{Line: lineNo, Reason: err.Error()}
		}

		count, err := strconv.Atoi(rawCount)
		if err != nil || count < 1 {
			return nil, &DeserializationError{Line: lineNo, Reason: fmt.Sprintf("count %q is not a positive integer", rawCount)}
		}

		if _, dup := table[key]; dup {
			return nil, &DeserializationError{Line: lineNo, Reason: fmt.Sprintf("duplicate key %q", rawKey)}
		}
		table[key] = count
	}
	return table, nil
}

func decodeKey[K Key](raw string) (K, error) {
	var key K
	switch p := any(&key).(type) {
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return key, fmt.Errorf("key %q is not an integer", raw)
		}
		*p = n
	case *string:
		s, err := unescapeKey(raw)
		if err != nil {
			return key, err
		}
		*p = s
	}
	return key, nil
}

func unescapeKey(raw string) (string, error) {
	if !strings.Contains(raw, `\`) {
		return raw, nil
	}

	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(raw) {
			return "", fmt.Errorf("key %q ends with a lone backslash", raw)
		}
		switch raw[i] {
		case '\\':
			b.WriteByte('\\')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf("key %q has unknown escape \\%c", raw, raw[i])
		}
	}
	return b.String(), nil
}
