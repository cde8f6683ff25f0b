// model/virtual.go
//
// Display fields computed from stored data. Everything here is derived on
// access and never written back to the store.
package model

import "time"

const (
	dateMed  = "Jan 2, 2006" // medium locale date
	dateForm = "2006-01-02"  // form prefill value
)

const CopyListPath = "/catalog/copies"

func CopyDetailPath(id string) string   { return "/catalog/copy/" + id }
func AuthorDetailPath(id string) string { return "/catalog/author/" + id }

// FormatDate renders a medium date in UTC, empty when the date is unset.
// Dates are always interpreted in UTC so a stored midnight does not drift
// a day when rendered.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateMed)
}

// FormDate renders yyyy-mm-dd for pre-filling edit forms.
func FormDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateForm)
}

// Lifespan keeps the separator even when one side is unset, so a
// death-only author renders as " - Dec 1, 1900".
func Lifespan(birth, death *time.Time) string {
	return FormatDate(birth) + " - " + FormatDate(death)
}

// FullName is "Family, First", or empty unless both parts are present.
func FullName(first, family string) string {
	if first == "" || family == "" {
		return ""
	}
	return family + ", " + first
}

func (c Copy) URL() string              { return CopyDetailPath(c.ID) }
func (c Copy) DueBackFormatted() string { return FormatDate(c.DueBack) }
func (c Copy) DueBackForm() string      { return FormDate(c.DueBack) }

func (a Author) URL() string { return AuthorDetailPath(a.ID) }

func (a Author) Name() string { return FullName(a.FirstName, a.FamilyName) }
func (a Author) Lifespan() string {
	return Lifespan(a.DateOfBirth, a.DateOfDeath)
}
func (a Author) DateOfBirthFormatted() string { return FormatDate(a.DateOfBirth) }
func (a Author) DateOfDeathFormatted() string { return FormatDate(a.DateOfDeath) }
func (a Author) DateOfBirthForm() string      { return FormDate(a.DateOfBirth) }
func (a Author) DateOfDeathForm() string      { return FormDate(a.DateOfDeath) }
