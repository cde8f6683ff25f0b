// service/copy/resolver.go
package copysvc

import (
	"context"

	"catalog/model"
)

// resolver turns stored book identifiers into Book entities, either for
// form selectors or to attach the referenced Book to a copy for display.
type resolver struct{ s Store }

// BookChoices lists all books (id, title) for a form selector.
func (r resolver) BookChoices(ctx context.Context) ([]model.Book, error) {
	return r.s.FindBooksBrief(ctx)
}

// Resolve loads the referenced Book, or a DANGLING_REF coded error when the
// identifier no longer points at anything.
func (r resolver) Resolve(ctx context.Context, bookRef string) (*model.Book, error) {
	b, err := r.s.FindBookByID(ctx, bookRef)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, makeErr(ErrDanglingRef)
	}
	return b, nil
}

// Populate attaches the referenced Book to c. On a dangling reference it
// attaches a title-less placeholder so display can degrade, and still
// returns the DANGLING_REF error so the fault is not swallowed.
func (r resolver) Populate(ctx context.Context, c *model.Copy) error {
	b, err := r.Resolve(ctx, c.BookID)
	if err != nil {
		if Code(err) == ErrDanglingRef {
			c.Book = &model.Book{ID: c.BookID}
		}
		return err
	}
	c.Book = b
	return nil
}

// PopulateAll attaches Books to every copy from a single brief fetch and
// returns the ids of copies whose reference dangles.
func (r resolver) PopulateAll(ctx context.Context, copies []model.Copy) ([]string, error) {
	books, err := r.s.FindBooksBrief(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	var dangling []string
	for i := range copies {
		if b, ok := byID[copies[i].BookID]; ok {
			attached := b
			copies[i].Book = &attached
		} else {
			copies[i].Book = &model.Book{ID: copies[i].BookID}
			dangling = append(dangling, copies[i].ID)
		}
	}
	return dangling, nil
}
