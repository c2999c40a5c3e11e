package dispatch

import (
	"context"

	"google.golang.org/protobuf/types/known/anypb"
)

// Dispatcher submits an envelope to the chain and returns the encoded
// response produced by the handler the envelope was routed to.
type Dispatcher interface {
	Dispatch(ctx context.Context, env *anypb.Any) ([]byte, error)
}

// AnyMsg is the JSON form of an Any envelope. Value is base64 encoded on the
// wire.
type AnyMsg struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

// CosmosMsg is the JSON message a contract runtime accepts for dispatch.
//
// Only the "any" variant is used by this package.
type CosmosMsg struct {
	Any *AnyMsg `json:"any,omitempty"`
}

// NewCosmosMsg returns the JSON form of env.
func NewCosmosMsg(env *anypb.Any) CosmosMsg {
	return CosmosMsg{
		Any: &AnyMsg{
			TypeURL: env.GetTypeUrl(),
			Value:   env.GetValue(),
		},
	}
}

// ToAny converts the message back into an envelope. It returns nil if the
// message does not carry an envelope.
func (m CosmosMsg) ToAny() *anypb.Any {
	if m.Any == nil {
		return nil
	}

	return &anypb.Any{
		TypeUrl: m.Any.TypeURL,
		Value:   m.Any.Value,
	}
}
