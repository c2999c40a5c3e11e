package absacc

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/anypb"
)

// Msg is a message that can travel inside an Any envelope.
type Msg interface {
	// TypeURL returns the identifier the receiver uses to route the message.
	TypeURL() string

	// Marshal returns the deterministic wire encoding of the message.
	Marshal() []byte

	// Unmarshal decodes b into the message, returning a *DecodeError if b is
	// malformed.
	Unmarshal(b []byte) error
}

// Pack wraps m in an Any envelope.
func Pack(m Msg) *anypb.Any {
	return &anypb.Any{
		TypeUrl: m.TypeURL(),
		Value:   m.Marshal(),
	}
}

// Unpack decodes the value of env into m, provided env carries m's type URL.
func Unpack(env *anypb.Any, m Msg) error {
	if env == nil {
		return errors.New("nil envelope")
	}
	if env.GetTypeUrl() != m.TypeURL() {
		return errors.Wrapf(ErrIncorrectTypeURL, "expected %s, got %s", m.TypeURL(), env.GetTypeUrl())
	}

	return m.Unmarshal(env.GetValue())
}

// ToAny wraps the request in the envelope submitted to the chain.
func (m *MsgRegisterAccount) ToAny() *anypb.Any {
	return Pack(m)
}

// UnpackRegisterAccount decodes a registration request from its envelope.
func UnpackRegisterAccount(env *anypb.Any) (*MsgRegisterAccount, error) {
	var m MsgRegisterAccount
	if err := Unpack(env, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
