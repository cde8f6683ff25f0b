// repository/copy/copyRepository.go
package copyrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"catalog/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrBookRef reports an insert/update whose book_id does not exist. The
// service validates the reference first; this is the store-level backstop.
var ErrBookRef = errors.New("referenced book does not exist")

type Store interface {
	FindByID(ctx context.Context, id string) (*model.Copy, error)
	FindAll(ctx context.Context) ([]model.Copy, error)
	FindBooksBrief(ctx context.Context) ([]model.Book, error)
	FindBookByID(ctx context.Context, id string) (*model.Book, error)
	// Insert mints and returns the new id; any id on c is ignored.
	Insert(ctx context.Context, c model.Copy) (string, error)
	// UpdateByID returns the stored record after the update, nil when absent.
	UpdateByID(ctx context.Context, id string, c model.Copy) (*model.Copy, error)
	// DeleteByID reports false when the record was already absent.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type store struct{ db *sql.DB }

func New(db *sql.DB) Store { return &store{db} }

func (s *store) FindByID(ctx context.Context, id string) (*model.Copy, error) {
	const q = `
SELECT id, book_id, imprint, status, due_back
FROM copies
WHERE id = $1`
	c, err := scanCopy(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *store) FindAll(ctx context.Context) ([]model.Copy, error) {
	const q = `
SELECT id, book_id, imprint, status, due_back
FROM copies`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Copy
	for rows.Next() {
		c, err := scanCopy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *store) FindBooksBrief(ctx context.Context) ([]model.Book, error) {
	const q = `SELECT id, title FROM books ORDER BY title`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *store) FindBookByID(ctx context.Context, id string) (*model.Book, error) {
	const q = `SELECT id, title FROM books WHERE id = $1`
	var b model.Book
	err := s.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *store) Insert(ctx context.Context, c model.Copy) (string, error) {
	const q = `
INSERT INTO copies (book_id, imprint, status, due_back)
VALUES ($1, $2, $3, $4)
RETURNING id`
	var id string
	err := s.db.QueryRowContext(ctx, q, c.BookID, c.Imprint, c.Status, nullTime(c.DueBack)).Scan(&id)
	if err != nil {
		return "", mapFK(err)
	}
	return id, nil
}

func (s *store) UpdateByID(ctx context.Context, id string, c model.Copy) (*model.Copy, error) {
	const q = `
UPDATE copies
SET book_id = $2, imprint = $3, status = $4, due_back = $5
WHERE id = $1
RETURNING id, book_id, imprint, status, due_back`
	upd, err := scanCopy(s.db.QueryRowContext(ctx, q, id, c.BookID, c.Imprint, c.Status, nullTime(c.DueBack)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapFK(err)
	}
	return upd, nil
}

func (s *store) DeleteByID(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM copies WHERE id = $1`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanCopy(r rowScanner) (*model.Copy, error) {
	var c model.Copy
	var due sql.NullTime
	if err := r.Scan(&c.ID, &c.BookID, &c.Imprint, &c.Status, &due); err != nil {
		return nil, err
	}
	if due.Valid {
		t := due.Time.UTC()
		c.DueBack = &t
	}
	return &c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func mapFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrBookRef
	}
	return err
}
