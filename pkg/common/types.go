package common

import "fmt"

// Record is one auctioned-item bid. It is the value every structure stores.
// The zero value is the "not found" sentinel returned by searches; loaded
// records always carry a non-empty ID, so the two never compare equal.
type Record struct {
	ID            string
	Title         string
	Fund          string
	ReceiptNumber string
	DatePaid      string
	Amount        float64
	NetSales      float64
}

// Empty returns the not-found sentinel.
func Empty() Record {
	return Record{}
}

// IsEmpty reports whether r is the sentinel.
func (r Record) IsEmpty() bool {
	return r.ID == ""
}

// SameID reports whether r and other share an identifier.
func (r Record) SameID(other Record) bool {
	return r.ID == other.ID
}

// String 方便调试打印
func (r Record) String() string {
	return fmt.Sprintf("%s: %s | %.2f | %s", r.ID, r.Title, r.Amount, r.Fund)
}
