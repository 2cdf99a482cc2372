package xmltree

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// flagYes is the only encoding of a true flag in disclosure filings
const flagYes = "Y"

// Clean trims surrounding whitespace and stringifies v without locale
// sensitive formatting. Nil and null values clean to the empty string.
func Clean(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case sql.NullString:
		if !t.Valid {
			return ""
		}
		return strings.TrimSpace(t.String)
	case *Node:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(t.text)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// CleanText is Clean for plain strings.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmpty reports whether v cleans to a non-empty string.
func IsNonEmpty(v any) bool {
	return Clean(v) != ""
}

// AsFlag reports whether v is the filing encoding of "yes". The match is
// exact and case-sensitive; anything else, including absence, is false.
func AsFlag(v any) bool {
	return Clean(v) == flagYes
}

// Present wraps cleaned text as a present value.
func Present(s string) sql.NullString {
	return sql.NullString{String: CleanText(s), Valid: true}
}

// Absent is the value of a field missing from the document.
var Absent = sql.NullString{}
