// Package loader turns tabular bid exports into records.
//
// Column layout (0-based) shared by every source:
//
//	0  title
//	1  identifier
//	4  amount          currency, symbol stripped
//	10 date paid
//	15 receipt number
//	18 net sales       currency, symbol stripped
//	19 fund
package loader

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"bidindex/pkg/common"

	"github.com/gofiber/fiber/v2/log"
)

const (
	colTitle         = 0
	colID            = 1
	colAmount        = 4
	colDatePaid      = 10
	colReceiptNumber = 15
	colNetSales      = 18
	colFund          = 19

	// MinColumns is the narrowest row that can be mapped to a record.
	MinColumns = 20
)

// Source yields the data rows of a tabular source in order, header excluded.
// A per-row problem is yielded as a common.LoadError with Row > 0 and the
// sequence continues; a problem with the source as a whole is yielded as a
// common.LoadError with Row == 0 and the sequence ends.
type Source interface {
	Name() string
	Rows() iter.Seq2[[]string, error]
}

// Report summarises one Load.
//   - Rows is the number of data rows seen, including skipped ones
//   - Accepted is the number of records produced
//   - Skipped holds one common.LoadError per rejected row
type Report struct {
	Source   string
	Rows     int
	Accepted int
	Skipped  []error
}

// Load reads every row of src and maps it to a record. Malformed rows are
// skipped and listed in the report; the load carries on. Only a failure of
// the source itself is returned as an error, together with whatever was read
// before it.
func Load(src Source, currencySymbol string) ([]common.Record, Report, error) {
	report := Report{Source: src.Name()}
	var records []common.Record

	row := 0
	for fields, err := range src.Rows() {
		if err != nil {
			var le common.LoadError
			if errors.As(err, &le) && le.Row > 0 {
				row = le.Row
				report.Rows++
				report.Skipped = append(report.Skipped, err)
				log.Warnf("[Loader] skipping row: %v", err)
				continue
			}
			log.Errorf("[Loader] %s unreadable: %v", src.Name(), err)
			return records, report, err
		}

		row++
		report.Rows++
		r, err := ParseRow(fields, currencySymbol)
		if err != nil {
			err = common.LoadError{Path: src.Name(), Row: row, Err: err}
			report.Skipped = append(report.Skipped, err)
			log.Warnf("[Loader] skipping row: %v", err)
			continue
		}
		records = append(records, r)
	}

	report.Accepted = len(records)
	log.Infof("[Loader] %s: %d rows, %d records, %d skipped", src.Name(), report.Rows, report.Accepted, len(report.Skipped))
	return records, report, nil
}

// ParseRow maps one row to a record. Amounts without digits become 0; a row
// that is too narrow or has no identifier is rejected.
func ParseRow(fields []string, currencySymbol string) (common.Record, error) {
	if len(fields) < MinColumns {
		return common.Record{}, fmt.Errorf("expected at least %d columns, got %d", MinColumns, len(fields))
	}
	id := strings.TrimSpace(fields[colID])
	if id == "" {
		return common.Record{}, errors.New("empty identifier")
	}
	return common.Record{
		ID:            id,
		Title:         fields[colTitle],
		Fund:          fields[colFund],
		ReceiptNumber: fields[colReceiptNumber],
		DatePaid:      fields[colDatePaid],
		Amount:        common.ParseCurrency(fields[colAmount], currencySymbol),
		NetSales:      common.ParseCurrency(fields[colNetSales], currencySymbol),
	}, nil
}
