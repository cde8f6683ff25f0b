// service/copy/copyService.go
package copysvc

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"catalog/model"
	copyrepo "catalog/repository/copy"
)

// errors used by controllers

type ErrCode string

// A missing record is a Result kind, not an error; the only coded fault is
// a reference that no longer resolves.
const ErrDanglingRef ErrCode = "DANGLING_REF"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Result is the per-operation outcome handed to the rendering collaborator.

type Kind string

const (
	KindRendered Kind = "rendered"
	KindRedirect Kind = "redirect"
	KindNotFound Kind = "not_found"
)

type Result struct {
	Kind Kind
	View string
	Data any
	Path string
}

func rendered(view string, data any) Result {
	return Result{Kind: KindRendered, View: view, Data: data}
}

func redirect(path string) Result { return Result{Kind: KindRedirect, Path: path} }

var notFound = Result{Kind: KindNotFound}

const (
	viewCopyList   = "copy_list"
	viewCopyDetail = "copy_detail"
	viewCopyForm   = "copy_form"
	viewCopyDelete = "copy_delete"
)

// view DTOs

// CopyView is a copy plus its computed display fields.
type CopyView struct {
	model.Copy
	DueBackFormatted string `json:"due_back_formatted"`
	URL              string `json:"url"`
}

func viewOf(c model.Copy) CopyView {
	return CopyView{Copy: c, DueBackFormatted: c.DueBackFormatted(), URL: c.URL()}
}

type ListView struct {
	Title  string     `json:"title"`
	Copies []CopyView `json:"copies"`
}

type DetailView struct {
	Title string   `json:"title"`
	Copy  CopyView `json:"copy"`
}

// FormState is the re-editable form: the sanitized input (or the stored
// record on edit GET), field issues, and the book selector choices.
type FormState struct {
	Title        string       `json:"title"`
	Copy         Sanitized    `json:"copy"`
	SelectedBook string       `json:"selected_book,omitempty"`
	Issues       []Issue      `json:"errors,omitempty"`
	BookChoices  []model.Book `json:"book_list"`
}

// Store is the persistence contract the lifecycle manager consumes.
type Store = copyrepo.Store

type Service interface {
	// List: all copies with their books attached.
	List(ctx context.Context) (Result, error)

	// Detail: one copy with its book attached; absent record is NotFound.
	Detail(ctx context.Context, id string) (Result, error)

	// NewForm / Create: blank form, then validate-and-persist.
	NewForm(ctx context.Context) (Result, error)
	Create(ctx context.Context, in FormInput) (Result, error)

	// EditForm / Update: pre-filled form, then validate-and-persist keeping
	// the existing id.
	EditForm(ctx context.Context, id string) (Result, error)
	Update(ctx context.Context, id string, in FormInput) (Result, error)

	// DeleteForm / Delete: confirm page, then idempotent removal.
	DeleteForm(ctx context.Context, id string) (Result, error)
	Delete(ctx context.Context, id string) (Result, error)
}

// ----- Service implementation -----

type service struct {
	s   Store
	res resolver
	log *slog.Logger
}

func New(s Store, log *slog.Logger) Service {
	return &service{s: s, res: resolver{s: s}, log: log}
}

func (s *service) List(ctx context.Context) (Result, error) {
	rows, err := s.s.FindAll(ctx)
	if err != nil {
		return Result{}, err
	}
	dangling, err := s.res.PopulateAll(ctx, rows)
	if err != nil {
		return Result{}, err
	}
	for _, id := range dangling {
		s.log.Warn("copy references missing book", "copy_id", id)
	}
	views := make([]CopyView, 0, len(rows))
	for _, c := range rows {
		views = append(views, viewOf(c))
	}
	return rendered(viewCopyList, ListView{Title: "Copy List", Copies: views}), nil
}

func (s *service) Detail(ctx context.Context, id string) (Result, error) {
	c, err := s.s.FindByID(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if c == nil {
		return notFound, nil
	}
	if err := s.res.Populate(ctx, c); err != nil {
		if Code(err) != ErrDanglingRef {
			return Result{}, err
		}
		// degraded render: record exists, its book is gone
		s.log.Warn("copy references missing book", "copy_id", c.ID, "book_id", c.BookID)
	}
	return rendered(viewCopyDetail, DetailView{Title: "Copy: " + c.Book.Title, Copy: viewOf(*c)}), nil
}

func (s *service) NewForm(ctx context.Context) (Result, error) {
	books, err := s.res.BookChoices(ctx)
	if err != nil {
		return Result{}, err
	}
	return rendered(viewCopyForm, FormState{
		Title:       "Create Copy",
		Copy:        Sanitized{Status: string(model.StatusAvailable)},
		BookChoices: books,
	}), nil
}

func (s *service) Create(ctx context.Context, in FormInput) (Result, error) {
	rec, san, issues, err := s.validate(ctx, in)
	if err != nil {
		return Result{}, err
	}
	if len(issues) > 0 {
		return s.correctionForm(ctx, "Create Copy", san, issues)
	}
	id, err := s.s.Insert(ctx, rec)
	if errors.Is(err, copyrepo.ErrBookRef) {
		// the book vanished between validation and insert
		return s.correctionForm(ctx, "Create Copy", san, []Issue{{Field: "book", Message: "Book does not exist"}})
	}
	if err != nil {
		return Result{}, err
	}
	return redirect(model.CopyDetailPath(id)), nil
}

func (s *service) EditForm(ctx context.Context, id string) (Result, error) {
	// the record and the selector choices are independent fetches
	var (
		c     *model.Copy
		books []model.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = s.s.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.res.BookChoices(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if c == nil {
		return notFound, nil
	}
	return rendered(viewCopyForm, FormState{
		Title:        "Update Copy",
		Copy:         sanitizedFromCopy(*c),
		SelectedBook: c.BookID,
		BookChoices:  books,
	}), nil
}

func (s *service) Update(ctx context.Context, id string, in FormInput) (Result, error) {
	rec, san, issues, err := s.validate(ctx, in)
	if err != nil {
		return Result{}, err
	}
	if len(issues) > 0 {
		return s.correctionForm(ctx, "Update Copy", san, issues)
	}
	// carry the existing id so the store cannot mint a new one
	rec.ID = id
	upd, err := s.s.UpdateByID(ctx, id, rec)
	if errors.Is(err, copyrepo.ErrBookRef) {
		return s.correctionForm(ctx, "Update Copy", san, []Issue{{Field: "book", Message: "Book does not exist"}})
	}
	if err != nil {
		return Result{}, err
	}
	if upd == nil {
		return notFound, nil
	}
	// the stored record is the source of truth for the redirect target
	return redirect(upd.URL()), nil
}

func (s *service) DeleteForm(ctx context.Context, id string) (Result, error) {
	c, err := s.s.FindByID(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if c == nil {
		return redirect(model.CopyListPath), nil
	}
	if err := s.res.Populate(ctx, c); err != nil && Code(err) != ErrDanglingRef {
		return Result{}, err
	}
	return rendered(viewCopyDelete, DetailView{Title: "Delete Copy", Copy: viewOf(*c)}), nil
}

func (s *service) Delete(ctx context.Context, id string) (Result, error) {
	c, err := s.s.FindByID(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if c == nil {
		// already gone, same outcome
		return redirect(model.CopyListPath), nil
	}
	if _, err := s.s.DeleteByID(ctx, id); err != nil {
		return Result{}, err
	}
	return redirect(model.CopyListPath), nil
}

// validate normalizes the input and confirms the book reference exists.
func (s *service) validate(ctx context.Context, in FormInput) (model.Copy, Sanitized, []Issue, error) {
	rec, san, issues := Normalize(in)
	if len(issues) == 0 {
		if _, err := s.res.Resolve(ctx, rec.BookID); err != nil {
			if Code(err) != ErrDanglingRef {
				return model.Copy{}, Sanitized{}, nil, err
			}
			issues = append(issues, Issue{Field: "book", Message: "Book does not exist"})
		}
	}
	return rec, san, issues, nil
}

// correctionForm rebuilds the re-editable form state after a validation
// failure. The choices list is always re-fetched so create and update share
// one re-render contract.
func (s *service) correctionForm(ctx context.Context, title string, san Sanitized, issues []Issue) (Result, error) {
	books, err := s.res.BookChoices(ctx)
	if err != nil {
		return Result{}, err
	}
	return rendered(viewCopyForm, FormState{
		Title:        title,
		Copy:         san,
		SelectedBook: san.Book,
		Issues:       issues,
		BookChoices:  books,
	}), nil
}

func sanitizedFromCopy(c model.Copy) Sanitized {
	return Sanitized{
		Book:    c.BookID,
		Imprint: c.Imprint,
		Status:  string(c.Status),
		DueBack: c.DueBackForm(),
	}
}
