// Package records turns extracted disclosure entities into flat, keyed rows
// and holds the catalogue of output streams.
package records

import (
	"database/sql"
	"strconv"
	"strings"
)

// Row is one flat output record in its stream's header order.
type Row []sql.NullString

// Valuer is an entity with a fixed column order.
type Valuer interface {
	Values() []sql.NullString
}

func key(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// Emit prefixes each entity's values with the document id.
func Emit[E Valuer](id string, entities []E) []Row {
	rows := make([]Row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, append(Row{key(id)}, e.Values()...))
	}
	return rows
}

// EmitOne is Emit for a single entity.
func EmitOne(id string, entity Valuer) Row {
	return append(Row{key(id)}, entity.Values()...)
}

// EmitCodes emits one (id, value) row per string, for entities that are
// reported by name or code only.
func EmitCodes(id string, codes []string) []Row {
	rows := make([]Row, 0, len(codes))
	for _, c := range codes {
		rows = append(rows, Row{key(id), key(c)})
	}
	return rows
}

// EmitIssueScoped prefixes values with the document id, the issue's
// position and its area code.
func EmitIssueScoped(id string, index int, code string, values []sql.NullString) Row {
	return append(Row{key(id), key(strconv.Itoa(index)), key(code)}, values...)
}

// joinLines joins specific issue descriptions the way they are stored in a
// single cell.
func joinLines(lines []string) sql.NullString {
	return key(strings.Join(lines, "\n"))
}

// Strings renders a row for text sinks. Null cells become empty strings.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		if v.Valid {
			out[i] = v.String
		}
	}
	return out
}

// Args returns the row as driver arguments, with null cells as nil.
func (r Row) Args() []any {
	out := make([]any, len(r))
	for i, v := range r {
		if v.Valid {
			out[i] = v.String
		}
	}
	return out
}
