package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware resolves bearer credentials to accounts and enforces route capabilities.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate requires a credential that maps onto a registered, active account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := BearerToken(c)
		if err != nil {
			return err
		}

		account, err := m.accountUC.ResolveCaller(c.Request().Context(), token)
		if err != nil {
			return err
		}

		m.attach(c, account)

		return next(c)
	}
}

// OptionalAuth attaches the caller when a valid credential is present and continues
// anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetAccount(c, nil)

		token, err := BearerToken(c)
		if err != nil {
			return next(c)
		}

		account, err := m.accountUC.ResolveCaller(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Continuing anonymously", slog.Any("error", err))

			return next(c)
		}

		m.attach(c, account)

		return next(c)
	}
}

// Require gates a route on a capability. It must run after Authenticate.
func (m *AuthMiddleware) Require(capability policy.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := deliverycontext.GetAccount(c)
			if err := policy.Authorize(account, capability); err != nil {
				return err
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) attach(c echo.Context, account *entity.Account) {
	deliverycontext.SetAccount(c, account)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("account_id", account.ID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}

// BearerToken extracts the credential from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", domainerrors.ErrTokenInvalid.WithMessage("Invalid token format, must be Bearer token")
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	return token, nil
}

// CurrentAccount returns the caller attached by Authenticate or OptionalAuth.
func CurrentAccount(c echo.Context) (*entity.Account, error) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WithMessage("Authentication required")
	}

	return account, nil
}
