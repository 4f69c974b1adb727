package rental_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	rentalctrl "bookrental/app/echoServer/controller/rental"
	"bookrental/app/echoServer/validation"
	"bookrental/model"
	rs "bookrental/service/rental"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	rentFn    func(ctx context.Context, userID, bookID string) (*model.Rental, error)
	returnFn  func(ctx context.Context, userID, rentalID string) (*model.Rental, error)
	myBooksFn func(ctx context.Context, userID string) ([]model.RentalView, error)
}

var _ rs.Service = (*svcMock)(nil)

func (m *svcMock) Rent(ctx context.Context, userID, bookID string) (*model.Rental, error) {
	return m.rentFn(ctx, userID, bookID)
}
func (m *svcMock) Return(ctx context.Context, userID, rentalID string) (*model.Rental, error) {
	return m.returnFn(ctx, userID, rentalID)
}
func (m *svcMock) MyBooks(ctx context.Context, userID string) ([]model.RentalView, error) {
	return m.myBooksFn(ctx, userID)
}

func newContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/rentals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	return c, rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_MissingBookIDFailsValidation(t *testing.T) {
	h := &rentalctrl.Controller{
		Svc: &svcMock{
			rentFn: func(ctx context.Context, userID, bookID string) (*model.Rental, error) {
				t.Fatal("service must not be called on invalid payload")
				return nil, nil
			},
		},
		Log: testLogger(),
	}

	c, rec := newContext(t, `{}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Validation failed")
}

func TestCreate_Success(t *testing.T) {
	h := &rentalctrl.Controller{
		Svc: &svcMock{
			rentFn: func(ctx context.Context, userID, bookID string) (*model.Rental, error) {
				require.Equal(t, "u1", userID)
				require.Equal(t, "b1", bookID)
				return &model.Rental{ID: "r1", BookID: bookID, UserID: userID}, nil
			},
		},
		Log: testLogger(),
	}

	c, rec := newContext(t, `{"bookId":"b1"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"r1"`)
}

func TestCreate_BodyUserMustMatchCaller(t *testing.T) {
	h := &rentalctrl.Controller{
		Svc: &svcMock{
			rentFn: func(ctx context.Context, userID, bookID string) (*model.Rental, error) {
				t.Fatal("service must not be called for another user's rental")
				return nil, nil
			},
		},
		Log: testLogger(),
	}

	c, rec := newContext(t, `{"bookId":"b1","userId":"someone-else"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
