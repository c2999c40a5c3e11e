package dispatch

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/abstract-account/absacc-go/absacc"
)

type MockClient struct {
	sync.Mutex
	mock.Mock
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) RegisterAccount(ctx context.Context, msg *absacc.MsgRegisterAccount) (*absacc.MsgRegisterAccountResponse, error) {
	m.Lock()
	defer m.Unlock()

	args := m.Called(ctx, msg)
	resp, _ := args.Get(0).(*absacc.MsgRegisterAccountResponse)
	return resp, args.Error(1)
}
