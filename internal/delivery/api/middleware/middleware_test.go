package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/errors"
	mockusecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "case insensitive prefix", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", wantErr: domainerrors.ErrUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", wantErr: domainerrors.ErrTokenInvalid},
		{name: "empty token", header: "Bearer   ", wantErr: domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.header)

			got, err := BearerToken(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Role: entity.RoleCustomer, Status: entity.StatusApproved, IsActive: true}

	t.Run("attaches account", func(t *testing.T) {
		accountUC := mockusecase.NewMockAccountUsecase(t)
		accountUC.EXPECT().ResolveCaller(mock.Anything, "tok").Return(account, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: accountUC, Logger: discardLogger()})

		c, _ := newContext("Bearer tok")
		err := m.Authenticate(func(c echo.Context) error {
			got, err := CurrentAccount(c)
			require.NoError(t, err)
			assert.Equal(t, account.ID, got.ID)

			return nil
		})(c)

		assert.NoError(t, err)
	})

	t.Run("resolution failure stops the chain", func(t *testing.T) {
		accountUC := mockusecase.NewMockAccountUsecase(t)
		accountUC.EXPECT().ResolveCaller(mock.Anything, "tok").Return(nil, domainerrors.ErrTokenExpired)
		m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: accountUC, Logger: discardLogger()})

		c, _ := newContext("Bearer tok")
		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: mockusecase.NewMockAccountUsecase(t), Logger: discardLogger()})

	c, _ := newContext("")
	called := false
	err := m.OptionalAuth(func(c echo.Context) error {
		called = true
		_, ok := deliverycontext.GetAccount(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRequire(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{AccountUC: mockusecase.NewMockAccountUsecase(t), Logger: discardLogger()})
	next := func(echo.Context) error { return nil }

	c, _ := newContext("")
	assert.ErrorIs(t, m.Require(policy.Admins)(next)(c), domainerrors.ErrUnauthenticated)

	deliverycontext.SetAccount(c, &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin, Status: entity.StatusApproved})
	assert.NoError(t, m.Require(policy.Admins)(next)(c))
	assert.NoError(t, m.Require(policy.Vendors)(next)(c))
}

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error wrapped",
			err:        errors.Wrap(domainerrors.ErrCategoryNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.ErrCategoryNotFound.ErrorCode(),
			wantMsg:    domainerrors.ErrCategoryNotFound.Message(),
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "unexpected error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")

			m.HandleHTTPError(tt.err, c)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, response.StatusError, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestHandleHTTPError_Committed(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())
	c, rec := newContext("")
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(domainerrors.ErrForbidden, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
