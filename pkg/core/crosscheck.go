package core

import (
	"errors"
	"fmt"

	"bidindex/pkg/core/memory"
)

const maxMismatches = 10

// CrossCheck compares idx against ref: both must hold the same number of
// records, every record in ref must be found in idx unchanged, and every
// record idx yields must exist in ref. At most maxMismatches differences are
// reported.
func CrossCheck(idx Index, ref *memory.ReferenceIndex) error {
	var errs []error
	add := func(err error) bool {
		errs = append(errs, err)
		return len(errs) < maxMismatches
	}

	if idx.Size() != ref.Size() {
		add(fmt.Errorf("%s holds %d records, reference holds %d", idx.Type(), idx.Size(), ref.Size()))
	}

	for want := range ref.All() {
		got, err := idx.Search(want.ID)
		if err != nil {
			if !add(fmt.Errorf("%s: search %s: %w", idx.Type(), want.ID, err)) {
				return errors.Join(errs...)
			}
			continue
		}
		if got != want {
			if !add(fmt.Errorf("%s: record %s differs: got %v, want %v", idx.Type(), want.ID, got, want)) {
				return errors.Join(errs...)
			}
		}
	}

	for got := range idx.All() {
		if ref.Search(got.ID).IsEmpty() {
			if !add(fmt.Errorf("%s: yields unknown record %s", idx.Type(), got.ID)) {
				break
			}
		}
	}
	return errors.Join(errs...)
}
