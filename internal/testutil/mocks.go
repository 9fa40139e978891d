package testutil

import (
	"vocaquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock for vocab.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(name string) (*domain.VocabularySet, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularySet), args.Error(1)
}

func (m *MockStore) Names() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
