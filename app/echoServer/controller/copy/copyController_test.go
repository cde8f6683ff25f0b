package copy_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	copyctrl "catalog/app/echoServer/controller/copy"
	copysvc "catalog/service/copy"
)

type svcMock struct {
	listFn   func(ctx context.Context) (copysvc.Result, error)
	detailFn func(ctx context.Context, id string) (copysvc.Result, error)
	createFn func(ctx context.Context, in copysvc.FormInput) (copysvc.Result, error)
	deleteFn func(ctx context.Context, id string) (copysvc.Result, error)
}

func (m *svcMock) List(ctx context.Context) (copysvc.Result, error) { return m.listFn(ctx) }
func (m *svcMock) Detail(ctx context.Context, id string) (copysvc.Result, error) {
	return m.detailFn(ctx, id)
}
func (m *svcMock) NewForm(ctx context.Context) (copysvc.Result, error) {
	return copysvc.Result{}, nil
}
func (m *svcMock) Create(ctx context.Context, in copysvc.FormInput) (copysvc.Result, error) {
	return m.createFn(ctx, in)
}
func (m *svcMock) EditForm(ctx context.Context, id string) (copysvc.Result, error) {
	return copysvc.Result{}, nil
}
func (m *svcMock) Update(ctx context.Context, id string, in copysvc.FormInput) (copysvc.Result, error) {
	return copysvc.Result{}, nil
}
func (m *svcMock) DeleteForm(ctx context.Context, id string) (copysvc.Result, error) {
	return copysvc.Result{}, nil
}
func (m *svcMock) Delete(ctx context.Context, id string) (copysvc.Result, error) {
	return m.deleteFn(ctx, id)
}

func newController(m *svcMock) *copyctrl.Controller {
	return &copyctrl.Controller{
		Svc: m,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const testID = "8f14e45f-ceea-467f-abcd-0123456789ab"

func TestCreate_RedirectsOnSuccess(t *testing.T) {
	m := &svcMock{
		createFn: func(ctx context.Context, in copysvc.FormInput) (copysvc.Result, error) {
			require.Equal(t, "B1", in.Book)
			return copysvc.Result{Kind: copysvc.KindRedirect, Path: "/catalog/copy/" + testID}, nil
		},
	}
	h := newController(m)

	e := echo.New()
	body := strings.NewReader(`{"book":"B1","imprint":"Penguin","status":"loaned"}`)
	req := httptest.NewRequest(http.MethodPost, "/catalog/copy/create", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/catalog/copy/"+testID, rec.Header().Get(echo.HeaderLocation))
}

func TestCreate_RendersValidationFailure(t *testing.T) {
	m := &svcMock{
		createFn: func(ctx context.Context, in copysvc.FormInput) (copysvc.Result, error) {
			return copysvc.Result{
				Kind: copysvc.KindRendered,
				View: "copy_form",
				Data: copysvc.FormState{Issues: []copysvc.Issue{{Field: "book", Message: "Book must be specified"}}},
			}, nil
		},
	}
	h := newController(m)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/catalog/copy/create", strings.NewReader(`{"imprint":"Penguin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"view":"copy_form"`)
	require.Contains(t, rec.Body.String(), "Book must be specified")
}

func TestDetail_NotFound(t *testing.T) {
	m := &svcMock{
		detailFn: func(ctx context.Context, id string) (copysvc.Result, error) {
			return copysvc.Result{Kind: copysvc.KindNotFound}, nil
		},
	}
	h := newController(m)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/catalog/copy/:id")
	c.SetParamNames("id")
	c.SetParamValues(testID)

	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDetail_RejectsMalformedID(t *testing.T) {
	h := newController(&svcMock{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/catalog/copy/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_RedirectsToList(t *testing.T) {
	m := &svcMock{
		deleteFn: func(ctx context.Context, id string) (copysvc.Result, error) {
			return copysvc.Result{Kind: copysvc.KindRedirect, Path: "/catalog/copies"}, nil
		},
	}
	h := newController(m)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/catalog/copy/:id/delete")
	c.SetParamNames("id")
	c.SetParamValues(testID)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/catalog/copies", rec.Header().Get(echo.HeaderLocation))
}
