package mocks

import (
	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockCatalog) At(i int) (domain.MovieRecord, error) {
	args := m.Called(i)
	return args.Get(0).(domain.MovieRecord), args.Error(1)
}

func (m *MockCatalog) Get(id int) (domain.MovieRecord, error) {
	args := m.Called(id)
	return args.Get(0).(domain.MovieRecord), args.Error(1)
}
