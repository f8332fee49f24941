// Package csvline splits a single line of CSV text into fields.
//
// It exists for importing Goodreads library exports, which mix double-quoted
// fields ("Smith, John"), single-quoted fields and bare values on the same
// line. The parser is a small state machine and is deliberately permissive:
// unbalanced quotes produce a best-effort split instead of an error, since
// seeding is a one-shot offline operation.
package csvline

import "strings"

type state int

const (
	stateFieldStart state = iota
	stateUnquoted
	stateSingleQuoted
	stateDoubleQuoted
	stateAfterQuote
)

// Parse splits one CSV line into its fields.
//
// Commas inside single or double quotes do not split. Surrounding quotes are
// stripped. Inside double quotes both `""` and `\"` collapse to a literal
// quote; inside single quotes `\'` collapses to a literal quote. Whitespace
// around a field is trimmed, internal whitespace is kept. A trailing comma
// yields an extra empty field. A blank line yields no fields.
func Parse(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var (
		fields []string
		buf    strings.Builder
		st     = stateFieldStart
	)

	endField := func() {
		fields = append(fields, buf.String())
		buf.Reset()
		st = stateFieldStart
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch st {
		case stateFieldStart:
			switch {
			case ch == ',':
				endField()
			case ch == '\'':
				st = stateSingleQuoted
			case ch == '"':
				st = stateDoubleQuoted
			case ch == ' ' || ch == '\t':
				// leading whitespace, skip
			default:
				buf.WriteRune(ch)
				st = stateUnquoted
			}

		case stateUnquoted:
			if ch == ',' {
				trimmed := strings.TrimRight(buf.String(), " \t")
				buf.Reset()
				buf.WriteString(trimmed)
				endField()
			} else {
				buf.WriteRune(ch)
			}

		case stateSingleQuoted:
			switch {
			case ch == '\\' && i+1 < len(runes):
				i++
				if runes[i] != '\'' {
					buf.WriteRune('\\')
				}
				buf.WriteRune(runes[i])
			case ch == '\'':
				st = stateAfterQuote
			default:
				buf.WriteRune(ch)
			}

		case stateDoubleQuoted:
			switch {
			case ch == '\\' && i+1 < len(runes):
				i++
				if runes[i] != '"' {
					buf.WriteRune('\\')
				}
				buf.WriteRune(runes[i])
			case ch == '"' && i+1 < len(runes) && runes[i+1] == '"':
				// doubled quote collapses to one literal quote
				buf.WriteRune('"')
				i++
			case ch == '"':
				st = stateAfterQuote
			default:
				buf.WriteRune(ch)
			}

		case stateAfterQuote:
			// between a closing quote and the next comma only whitespace is
			// expected; anything else is appended best-effort
			switch {
			case ch == ',':
				endField()
			case ch == ' ' || ch == '\t':
				// skip
			default:
				buf.WriteRune(ch)
			}
		}
	}

	// pending field, also covers a trailing comma producing an empty field
	if st == stateUnquoted {
		trimmed := strings.TrimRight(buf.String(), " \t")
		buf.Reset()
		buf.WriteString(trimmed)
	}
	fields = append(fields, buf.String())

	return fields
}
