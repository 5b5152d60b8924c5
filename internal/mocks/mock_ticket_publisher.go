package mocks

import (
	"context"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTicketPublisher struct {
	mock.Mock
}

func (m *MockTicketPublisher) Publish(ctx context.Context, ticket domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}
