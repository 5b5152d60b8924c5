package mocks

import (
	"context"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

type MockMovieSource struct {
	GetAllFunc func(ctx context.Context) ([]domain.SeedMovie, error)
}

func (m *MockMovieSource) GetAll(ctx context.Context) ([]domain.SeedMovie, error) {
	return m.GetAllFunc(ctx)
}
