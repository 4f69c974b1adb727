package validation_test

import (
	"testing"

	"bookrental/app/echoServer/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var _ echo.Validator = (*validation.Validator)(nil)

type payload struct {
	Email string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := validation.New()

	require.NoError(t, v.Validate(payload{Email: "user@example.com"}))
	require.Error(t, v.Validate(payload{Email: "not-an-email"}))
	require.Error(t, v.Validate(payload{}))
}
