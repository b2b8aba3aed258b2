package context

import (
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyAccount is the echo.Context key holding the resolved caller.
const KeyAccount ContextKey = "account"

// SetAccount stores the resolved caller. A nil account marks an anonymous request.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(string(KeyAccount), account)
}

// GetAccount returns the caller resolved by the auth middleware.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(string(KeyAccount)).(*entity.Account)
	if !ok || account == nil {
		return nil, false
	}

	return account, true
}
