package loader

import (
	"database/sql"
	"fmt"
	"iter"
	"os"
	"regexp"

	"bidindex/pkg/common"

	_ "modernc.org/sqlite"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads the rows of one table, in rowid order, using the same
// column layout as the CSV export. Column names play the role of the header.
type SQLiteSource struct {
	Path  string
	Table string
}

func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{Path: path, Table: table}
}

func (s *SQLiteSource) Name() string {
	return s.Path + ":" + s.Table
}

func (s *SQLiteSource) Rows() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		fail := func(err error) {
			yield(nil, common.LoadError{Path: s.Name(), Err: err})
		}

		if !tableName.MatchString(s.Table) {
			fail(fmt.Errorf("invalid table name %q", s.Table))
			return
		}
		// sql.Open would silently create a missing database file
		if _, err := os.Stat(s.Path); err != nil {
			fail(err)
			return
		}

		db, err := sql.Open("sqlite", s.Path)
		if err != nil {
			fail(err)
			return
		}
		defer db.Close()

		rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, s.Table))
		if err != nil {
			fail(err)
			return
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			fail(err)
			return
		}

		row := 0
		for rows.Next() {
			row++
			vals := make([]sql.NullString, len(cols))
			dest := make([]interface{}, len(cols))
			for i := range vals {
				dest[i] = &vals[i]
			}
			if err := rows.Scan(dest...); err != nil {
				if !yield(nil, common.LoadError{Path: s.Name(), Row: row, Err: err}) {
					return
				}
				continue
			}

			fields := make([]string, len(cols))
			for i, v := range vals {
				fields[i] = v.String
			}
			if !yield(fields, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			fail(err)
		}
	}
}
