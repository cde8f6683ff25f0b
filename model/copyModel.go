// model/copy.go
package model

import "time"

type CopyStatus string

const (
	StatusAvailable   CopyStatus = "available"
	StatusMaintenance CopyStatus = "maintenance"
	StatusLoaned      CopyStatus = "loaned"
	StatusReserved    CopyStatus = "reserved"
)

type Book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Copy is a trackable physical instance of a Book. DueBack nil means the
// copy has no due date; the zero time is never stored.
type Copy struct {
	ID      string     `json:"id"`
	BookID  string     `json:"book_id"`
	Imprint string     `json:"imprint"`
	Status  CopyStatus `json:"status"`
	DueBack *time.Time `json:"due_back,omitempty"`
	Book    *Book      `json:"book,omitempty"` // attached by the resolver, never persisted
}
