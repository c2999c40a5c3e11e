package dispatch

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/abstract-account/absacc-go/absacc"
)

func TestClient_RegisterAccount(t *testing.T) {
	d := NewMockDispatcher()
	c := NewClient(d)

	req := newTestRequest()
	expected := &absacc.MsgRegisterAccountResponse{Address: "addr1new", Data: []byte("data")}

	d.On("Dispatch", mock.Anything, mock.MatchedBy(func(env *anypb.Any) bool {
		unpacked, err := absacc.UnpackRegisterAccount(env)
		return err == nil && assert.ObjectsAreEqual(req, unpacked)
	})).Return(expected.Marshal(), nil)

	resp, err := c.RegisterAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, expected, resp)
	d.AssertExpectations(t)
}

func TestClient_RegisterAccount_DispatchError(t *testing.T) {
	d := NewMockDispatcher()
	c := NewClient(d)

	dispatchErr := errors.New("node unavailable")
	d.On("Dispatch", mock.Anything, mock.Anything).Return(nil, dispatchErr)

	resp, err := c.RegisterAccount(context.Background(), newTestRequest())
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, dispatchErr))
}

func TestClient_RegisterAccount_MalformedResponse(t *testing.T) {
	d := NewMockDispatcher()
	c := NewClient(d)

	// varint cut off mid-sequence
	d.On("Dispatch", mock.Anything, mock.Anything).Return([]byte{0x18, 0x80}, nil).Once()

	resp, err := c.RegisterAccount(context.Background(), newTestRequest())
	assert.Nil(t, resp)

	var decodeErr *absacc.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	d.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestClient_RegisterAccount_NilRequest(t *testing.T) {
	d := NewMockDispatcher()
	c := NewClient(d)

	_, err := c.RegisterAccount(context.Background(), nil)
	assert.Error(t, err)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestClient_EndToEnd(t *testing.T) {
	node, server := newTestNode(t)
	c := NewClient(NewJSONRPCDispatcher(server.URL))

	node.reply(dispatchResponse{Data: (&absacc.MsgRegisterAccountResponse{Address: "addr1new"}).Marshal()}, nil)

	resp, err := c.RegisterAccount(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.Equal(t, &absacc.MsgRegisterAccountResponse{Address: "addr1new"}, resp)
}

func TestMockClient(t *testing.T) {
	m := NewMockClient()
	var c Client = m

	m.On("RegisterAccount", mock.Anything, mock.Anything).Return(&absacc.MsgRegisterAccountResponse{Address: "addr1new"}, nil)

	resp, err := c.RegisterAccount(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.Equal(t, "addr1new", resp.Address)
	m.AssertExpectations(t)
}
