package absacc

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/anypb"
)

func TestToAny(t *testing.T) {
	m := NewMsgRegisterAccount("addr1xyz", 7, nil, Coins{NewCoin("uusd", "1000")}, []byte{0x01, 0x02})

	env := m.ToAny()
	assert.Equal(t, "/abstractaccount.v1.MsgRegisterAccount", env.TypeUrl)
	assert.Equal(t, m.Marshal(), env.Value)

	// The envelope owns its bytes.
	env.Value[0] = 0xff
	assert.Equal(t, byte(0x0a), m.Marshal()[0])

	decoded, err := UnpackRegisterAccount(env)
	assert.Error(t, err)
	assert.Nil(t, decoded)

	decoded, err = UnpackRegisterAccount(m.ToAny())
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestToAny_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		m := randomRegisterAccount(r)

		env := m.ToAny()
		require.Equal(t, TypeURLMsgRegisterAccount, env.GetTypeUrl())

		decoded, err := UnpackRegisterAccount(env)
		require.NoError(t, err)
		require.Equal(t, m, decoded)
	}
}

func TestUnpack_IncorrectTypeURL(t *testing.T) {
	resp := &MsgRegisterAccountResponse{Address: "addr1new"}

	_, err := UnpackRegisterAccount(Pack(resp))
	assert.True(t, errors.Is(err, ErrIncorrectTypeURL))

	_, err = UnpackRegisterAccount(&anypb.Any{
		TypeUrl: "abstractaccount.v1.MsgRegisterAccount",
		Value:   NewMsgRegisterAccount("addr1xyz", 1, nil, nil, nil).Marshal(),
	})
	assert.True(t, errors.Is(err, ErrIncorrectTypeURL))

	_, err = UnpackRegisterAccount(nil)
	assert.Error(t, err)

	var out MsgRegisterAccountResponse
	require.NoError(t, Unpack(Pack(resp), &out))
	assert.Equal(t, resp, &out)
}
