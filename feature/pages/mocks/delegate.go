package mocks

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// Delegate is a mock implementation of pages.Delegate that also implements
// loader.Preparer.
type Delegate struct {
	mock.Mock
}

func (m *Delegate) Prepare(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Delegate) Handle(c *fiber.Ctx) error {
	args := m.Called(c)
	return args.Error(0)
}
