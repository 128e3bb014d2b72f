package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"os"
	"strings"

	"bidindex/pkg/common"
)

// CSVSource reads a comma separated export with an optional header line.
// Rows may have any width; quoting follows RFC 4180 and a badly quoted row is
// reported and skipped.
type CSVSource struct {
	Path       string
	SkipHeader bool
}

func NewCSVSource(path string, skipHeader bool) *CSVSource {
	return &CSVSource{Path: path, SkipHeader: skipHeader}
}

func (s *CSVSource) Name() string {
	return s.Path
}

func (s *CSVSource) Rows() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		f, err := os.Open(s.Path)
		if err != nil {
			yield(nil, common.LoadError{Path: s.Path, Err: err})
			return
		}
		defer f.Close()

		r := csv.NewReader(bufio.NewReader(f))
		r.FieldsPerRecord = -1
	
		first := true
		row := 0
		for {
			fields, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var pe *csv.ParseError
				if !errors.As(err, &pe) {
					yield(nil, common.LoadError{Path: s.Path, Err: err})
					return
				}
				if first && s.SkipHeader {
					first = false
					continue
				}
				first = false
				row++
				if !yield(nil, common.LoadError{Path: s.Path, Row: row, Err: err}) {
					return
				}
				continue
			}

			if first {
				first = false
				if len(fields) > 0 {
					fields[0] = strings.TrimPrefix(fields[0], "\ufeff")
				}
				if s.SkipHeader {
					continue
				}
			}
			row++
			if !yield(fields, nil) {
				return
			}
		}
	}
}
