// service/author/authorService.go
package authorsvc

import (
	"context"

	"catalog/model"
)

// AuthorView carries the computed display fields alongside the stored ones.
// Computed on every read, never persisted.
type AuthorView struct {
	model.Author
	Name                 string `json:"name"`
	Lifespan             string `json:"lifespan"`
	DateOfBirthFormatted string `json:"date_of_birth_formatted"`
	DateOfDeathFormatted string `json:"date_of_death_formatted"`
	DateOfBirthForm      string `json:"date_of_birth_form"`
	DateOfDeathForm      string `json:"date_of_death_form"`
	URL                  string `json:"url"`
}

func viewOf(a model.Author) AuthorView {
	return AuthorView{
		Author:               a,
		Name:                 a.Name(),
		Lifespan:             a.Lifespan(),
		DateOfBirthFormatted: a.DateOfBirthFormatted(),
		DateOfDeathFormatted: a.DateOfDeathFormatted(),
		DateOfBirthForm:      a.DateOfBirthForm(),
		DateOfDeathForm:      a.DateOfDeathForm(),
		URL:                  a.URL(),
	}
}

type Repo interface {
	List(ctx context.Context) ([]model.Author, error)
	Detail(ctx context.Context, id string) (*model.Author, error)
}

type Service interface {
	List(ctx context.Context) ([]AuthorView, error)
	Detail(ctx context.Context, id string) (*AuthorView, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]AuthorView, error) {
	rows, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AuthorView, 0, len(rows))
	for _, a := range rows {
		out = append(out, viewOf(a))
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*AuthorView, error) {
	a, err := s.r.Detail(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	v := viewOf(*a)
	return &v, nil
}
