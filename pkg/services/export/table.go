package export

import (
	"fmt"
	"strings"
	"time"
)

// Field is one labelled cell of an exported record.
type Field struct {
	Label string
	Value any
}

type Record []Field

// Table is a flat, ordered export of one view. Columns fixes the header order
// even when there are no records.
type Table struct {
	BaseName string
	Columns  []string
	Records  []Record
}

// Column maps a view row to one labelled export value.
type Column[T any] struct {
	Label string
	Value func(T) any
}

// Project selects and renames the fields of rows. Row order is preserved.
func Project[T any](baseName string, rows []T, columns []Column[T]) Table {
	t := Table{
		BaseName: baseName,
		Columns:  make([]string, 0, len(columns)),
		Records:  make([]Record, 0, len(rows)),
	}
	for _, c := range columns {
		t.Columns = append(t.Columns, c.Label)
	}

	for _, row := range rows {
		rec := make(Record, 0, len(columns))
		for _, c := range columns {
			rec = append(rec, Field{Label: c.Label, Value: c.Value(row)})
		}
		t.Records = append(t.Records, rec)
	}
	return t
}

// Filename returns "<base>_<YYYY-MM-DD>.xlsx" for the day of now.
func (t Table) Filename(now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", sanitize(t.BaseName), now.Format("2006-01-02"))
}

func (r Record) Values() []any {
	values := make([]any, 0, len(r))
	for _, f := range r {
		values = append(values, f.Value)
	}
	return values
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
