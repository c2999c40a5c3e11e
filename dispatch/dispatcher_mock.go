package dispatch

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"google.golang.org/protobuf/types/known/anypb"
)

type MockDispatcher struct {
	sync.Mutex
	mock.Mock
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Dispatch(ctx context.Context, env *anypb.Any) ([]byte, error) {
	m.Lock()
	defer m.Unlock()

	args := m.Called(ctx, env)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
