package jql

import (
	"fmt"
	"strings"
)

// JQL renders the statement into Jira query syntax.
func (s *Statement) JQL() string {
	return renderClause(s.Clause)
}

func renderClause(c Clause) string {
	switch c := c.(type) {
	case And:
		parts := make([]string, len(c))
		for i, inner := range c {
			parts[i] = renderClause(inner)
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " AND "))
	case In:
		values := make([]string, len(c.Values))
		for i, v := range c.Values {
			values[i] = renderValue(v)
		}
		return fmt.Sprintf("%s IN (%s)", c.Field, strings.Join(values, ", "))
	default:
		panic(fmt.Sprintf("jql: unhandled clause type %T", c))
	}
}

func renderValue(v Value) string {
	switch v := v.(type) {
	case String:
		return `"` + escapeText(string(v)) + `"`
	default:
		panic(fmt.Sprintf("jql: unhandled value type %T", v))
	}
}

// escapeText prepares a text value for embedding in a quoted JQL
// string. A literal double quote gets a single leading backslash; each
// character JQL reserves gets a doubled backslash. The tracker parses
// these strictly, so the rule is reproduced character for character.
func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, c := range s {
		switch c {
		case '"':
			b.WriteByte('\\')
		case '+', '-', '&', '|', '!', '(', ')', '{', '}', '[', ']', '^', '~', '*', '?', '\\', ':':
			b.WriteByte('\\')
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}

	return b.String()
}
