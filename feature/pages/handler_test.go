package pages

import (
	"io"
	"net/http/httptest"
	"testing"

	"page-server/feature/pages/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleAll_Delegates(t *testing.T) {
	delegate := new(mocks.Delegate)
	delegate.On("Handle", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*fiber.Ctx)
		c.Set("X-Rendered-By", "stub")
		_ = c.Status(fiber.StatusTeapot).SendString("sentinel " + c.Method() + " " + c.Path())
	}).Return(nil)

	app := fiber.New()
	NewHandler(delegate).RegisterRoutes(app)

	for _, target := range []string{"/", "/about", "/blog/post-1", "/favicon.ico"} {
		resp, err := app.Test(httptest.NewRequest("POST", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
		assert.Equal(t, "stub", resp.Header.Get("X-Rendered-By"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "sentinel POST "+target, string(body))
	}

	delegate.AssertNumberOfCalls(t, "Handle", 4)
}

func TestHandleAll_ReturnsDelegateError(t *testing.T) {
	delegate := new(mocks.Delegate)
	delegate.On("Handle", mock.Anything).Return(assert.AnError)

	var got error
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			got = err
			return c.SendString("caught")
		},
	})
	NewHandler(delegate).RegisterRoutes(app)

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.ErrorIs(t, got, assert.AnError)
}
