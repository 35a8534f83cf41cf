package pages

import (
	"context"
	"testing"

	"page-server/feature/pages/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handleOnly struct{}

func (handleOnly) Handle(c *fiber.Ctx) error { return nil }

func TestLoader(t *testing.T) {
	delegate := new(mocks.Delegate)
	delegate.On("Prepare", mock.Anything).Return(nil)
	feature := NewFeature(delegate)

	assert.Equal(t, "pages", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Prepare(context.Background()))
	delegate.AssertCalled(t, "Prepare", mock.Anything)

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_PrepareError(t *testing.T) {
	delegate := new(mocks.Delegate)
	delegate.On("Prepare", mock.Anything).Return(assert.AnError)

	assert.ErrorIs(t, NewFeature(delegate).Prepare(context.Background()), assert.AnError)
}

func TestLoader_DelegateWithoutPrepare(t *testing.T) {
	assert.NoError(t, NewFeature(handleOnly{}).Prepare(context.Background()))
}
