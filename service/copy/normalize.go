// service/copy/normalize.go
package copysvc

import (
	"html"
	"strings"
	"time"

	"catalog/model"
)

type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormInput is the raw form payload as submitted.
type FormInput struct {
	Book    string `json:"book" form:"book"`
	Imprint string `json:"imprint" form:"imprint"`
	Status  string `json:"status" form:"status"`
	DueBack string `json:"due_back" form:"due_back"`
}

// Sanitized mirrors FormInput after trim/escape. On validation failure it is
// echoed back so the form re-renders with what the user typed, not with a
// half-applied record.
type Sanitized struct {
	Book    string `json:"book"`
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

// Normalize turns raw input into a canonical record plus field issues.
// Pure: no store access, no side effects.
func Normalize(in FormInput) (model.Copy, Sanitized, []Issue) {
	var issues []Issue

	book := html.EscapeString(strings.TrimSpace(in.Book))
	if book == "" {
		issues = append(issues, Issue{Field: "book", Message: "Book must be specified"})
	}

	imprint := html.EscapeString(strings.TrimSpace(in.Imprint))
	if imprint == "" {
		issues = append(issues, Issue{Field: "imprint", Message: "Imprint must be specified"})
	}

	// Unrecognized status values pass through escaped but unchanged; the
	// stored set is open. Absent means available.
	status := html.EscapeString(in.Status)
	if status == "" {
		status = string(model.StatusAvailable)
	}

	san := Sanitized{
		Book:    book,
		Imprint: imprint,
		Status:  status,
		DueBack: strings.TrimSpace(in.DueBack),
	}

	var due *time.Time
	if san.DueBack != "" {
		t, err := parseISODate(san.DueBack)
		if err != nil {
			issues = append(issues, Issue{Field: "due_back", Message: "Invalid Date"})
		} else {
			due = &t
		}
	}

	rec := model.Copy{
		BookID:  book,
		Imprint: imprint,
		Status:  model.CopyStatus(status),
		DueBack: due,
	}
	return rec, san, issues
}

// parseISODate accepts a calendar date or a full RFC 3339 timestamp, always
// interpreted in UTC.
func parseISODate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
