package dispatch

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ybbus/jsonrpc"
	"google.golang.org/protobuf/types/known/anypb"
	"mfycheng.dev/retry"
	"mfycheng.dev/retry/backoff"
)

// DefaultMethod is the JSON-RPC method envelopes are submitted with.
const DefaultMethod = "dispatch_any"

var (
	// ErrNoResponse is returned when the node accepted an envelope but
	// returned no response data.
	ErrNoResponse = errors.New("no response")

	errRateLimited  = errors.New("rate limited")
	errServiceError = errors.New("service error")
)

func init() {
	if err := registerMetrics(); err != nil {
		logrus.WithError(err).Error("failed to register dispatch metrics")
	}
}

type dispatchResponse struct {
	Data []byte `json:"data"`
}

// Option configures a JSONRPCDispatcher.
type Option func(o *opts)

type opts struct {
	method      string
	rpcOpts     *jsonrpc.RPCClientOpts
	maxAttempts uint
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// WithMethod overrides the JSON-RPC method used to submit envelopes.
func WithMethod(method string) Option {
	return func(o *opts) {
		o.method = method
	}
}

// WithHTTPClient configures the HTTP client used by the underlying RPC client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *opts) {
		o.rpcOpts.HTTPClient = c
	}
}

// WithHeader adds a header to every RPC request.
func WithHeader(key, value string) Option {
	return func(o *opts) {
		if o.rpcOpts.CustomHeaders == nil {
			o.rpcOpts.CustomHeaders = make(map[string]string)
		}
		o.rpcOpts.CustomHeaders[key] = value
	}
}

// WithRetry configures how rate limited and failed submissions are retried.
//
// maxAttempts includes the initial attempt.
func WithRetry(maxAttempts uint, baseBackoff, maxBackoff time.Duration) Option {
	return func(o *opts) {
		o.maxAttempts = maxAttempts
		o.baseBackoff = baseBackoff
		o.maxBackoff = maxBackoff
	}
}

// JSONRPCDispatcher submits envelopes to a node over JSON-RPC.
//
// Envelopes are sent as a single CosmosMsg parameter, and the node is
// expected to reply with {"data": "<base64 response>"}.
type JSONRPCDispatcher struct {
	log     *logrus.Entry
	client  jsonrpc.RPCClient
	method  string
	retrier retry.Retrier
}

// NewJSONRPCDispatcher returns a dispatcher using the specified endpoint.
func NewJSONRPCDispatcher(endpoint string, options ...Option) *JSONRPCDispatcher {
	o := opts{
		method:      DefaultMethod,
		rpcOpts:     &jsonrpc.RPCClientOpts{},
		maxAttempts: defaultConfig.MaxAttempts,
		baseBackoff: defaultConfig.BaseBackoff,
		maxBackoff:  defaultConfig.MaxBackoff,
	}
	for _, opt := range options {
		opt(&o)
	}

	return &JSONRPCDispatcher{
		log:    logrus.StandardLogger().WithField("type", "dispatch/jsonrpc"),
		client: jsonrpc.NewClientWithOpts(endpoint, o.rpcOpts),
		method: o.method,
		retrier: retry.NewRetrier(
			retry.RetriableErrors(errRateLimited, errServiceError),
			retry.Limit(o.maxAttempts),
			retry.BackoffWithJitter(backoff.BinaryExponential(o.baseBackoff), o.maxBackoff, 0.1),
		),
	}
}

// NewJSONRPCDispatcherFromConfig returns a dispatcher configured by c.
func NewJSONRPCDispatcherFromConfig(c Config, options ...Option) *JSONRPCDispatcher {
	options = append([]Option{
		WithMethod(c.Method),
		WithRetry(c.MaxAttempts, c.BaseBackoff, c.MaxBackoff),
	}, options...)

	return NewJSONRPCDispatcher(c.Endpoint, options...)
}

// Dispatch implements Dispatcher.Dispatch.
//
// The context is checked before every attempt; an in-flight request is not
// interrupted.
func (d *JSONRPCDispatcher) Dispatch(ctx context.Context, env *anypb.Any) ([]byte, error) {
	if env == nil {
		return nil, errors.New("nil envelope")
	}

	msg := NewCosmosMsg(env)
	typeURL := env.GetTypeUrl()

	var resp *dispatchResponse
	attempts, err := d.retrier.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dispatchCounterVec.WithLabelValues(typeURL).Inc()

		err := d.client.CallFor(&resp, d.method, msg)
		if err == nil {
			return nil
		}

		rpcErr, ok := err.(*jsonrpc.RPCError)
		if !ok {
			dispatchErrorCounterVec.WithLabelValues(typeURL, "").Inc()
			return err
		}
		dispatchErrorCounterVec.WithLabelValues(typeURL, strconv.Itoa(rpcErr.Code)).Inc()
		if rpcErr.Code == 429 {
			return errRateLimited
		}
		if rpcErr.Code >= 500 {
			return errServiceError
		}

		return err
	})
	if err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"type_url": typeURL,
			"attempts": attempts,
		}).Debug("failed to dispatch envelope")
		return nil, errors.Wrapf(err, "failed to dispatch %s", typeURL)
	}

	if resp == nil {
		return nil, ErrNoResponse
	}

	return resp.Data, nil
}
