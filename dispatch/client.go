package dispatch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/abstract-account/absacc-go/absacc"
)

// Client registers abstract accounts through a Dispatcher.
type Client interface {
	// RegisterAccount submits the registration request and decodes the
	// chain's response.
	//
	// Malformed responses are reported with an error wrapping an
	// *absacc.DecodeError and are not retried.
	RegisterAccount(ctx context.Context, msg *absacc.MsgRegisterAccount) (*absacc.MsgRegisterAccountResponse, error)
}

type client struct {
	log        *logrus.Entry
	dispatcher Dispatcher
}

// NewClient returns a client that submits requests with d.
func NewClient(d Dispatcher) Client {
	return &client{
		log:        logrus.StandardLogger().WithField("type", "dispatch/client"),
		dispatcher: d,
	}
}

// RegisterAccount implements Client.RegisterAccount.
func (c *client) RegisterAccount(ctx context.Context, msg *absacc.MsgRegisterAccount) (*absacc.MsgRegisterAccountResponse, error) {
	if msg == nil {
		return nil, errors.New("nil registration request")
	}

	log := c.log.WithFields(logrus.Fields{
		"method":  "RegisterAccount",
		"sender":  msg.Sender,
		"code_id": msg.CodeID,
		"funds":   msg.Funds.String(),
	})

	b, err := c.dispatcher.Dispatch(ctx, msg.ToAny())
	if err != nil {
		log.WithError(err).Warn("failed to dispatch registration")
		return nil, errors.Wrap(err, "failed to dispatch registration")
	}

	resp, err := absacc.UnmarshalRegisterAccountResponse(b)
	if err != nil {
		log.WithError(err).Warn("received malformed registration response")
		return nil, errors.Wrap(err, "invalid registration response")
	}

	log.WithField("address", resp.Address).Info("account registered")
	return resp, nil
}
