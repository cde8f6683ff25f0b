// repository/author/authorRepository.go
package authorrepo

import (
	"context"
	"database/sql"
	"errors"

	"catalog/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Author, error)
	Detail(ctx context.Context, id string) (*model.Author, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Author, error) {
	const q = `
SELECT id, first_name, family_name, date_of_birth, date_of_death
FROM authors
ORDER BY family_name, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id string) (*model.Author, error) {
	const q = `
SELECT id, first_name, family_name, date_of_birth, date_of_death
FROM authors
WHERE id = $1`
	a, err := scanAuthor(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanAuthor(r rowScanner) (*model.Author, error) {
	var a model.Author
	var birth, death sql.NullTime
	if err := r.Scan(&a.ID, &a.FirstName, &a.FamilyName, &birth, &death); err != nil {
		return nil, err
	}
	if birth.Valid {
		t := birth.Time.UTC()
		a.DateOfBirth = &t
	}
	if death.Valid {
		t := death.Time.UTC()
		a.DateOfDeath = &t
	}
	return &a, nil
}
