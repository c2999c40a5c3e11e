package absacc

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/anypb"
)

// DecodeFunc decodes the wire bytes of a single message type.
type DecodeFunc func(b []byte) (Msg, error)

// Registry maps type URLs to decoders. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]DecodeFunc),
	}
}

// NewDefaultRegistry returns a registry containing every abstractaccount.v1
// message.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeURLMsgRegisterAccount, decoderFor(func() Msg { return &MsgRegisterAccount{} }))
	r.Register(TypeURLMsgRegisterAccountResponse, decoderFor(func() Msg { return &MsgRegisterAccountResponse{} }))
	r.Register(TypeURLEventAccountRegistered, decoderFor(func() Msg { return &EventAccountRegistered{} }))
	return r
}

func decoderFor(newMsg func() Msg) DecodeFunc {
	return func(b []byte) (Msg, error) {
		m := newMsg()
		if err := m.Unmarshal(b); err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Register registers the decoder for typeURL.
//
// Register panics if typeURL is empty or already registered.
func (r *Registry) Register(typeURL string, fn DecodeFunc) {
	if typeURL == "" {
		panic("absacc: empty type url")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decoders[typeURL]; exists {
		panic(fmt.Sprintf("absacc: decoder already registered for '%s'", typeURL))
	}
	r.decoders[typeURL] = fn
}

// Decode decodes b using the decoder registered for typeURL.
func (r *Registry) Decode(typeURL string, b []byte) (Msg, error) {
	r.mu.RLock()
	fn, ok := r.decoders[typeURL]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrUnknownTypeURL, typeURL)
	}

	return fn(b)
}

// Unpack decodes the message carried by env.
func (r *Registry) Unpack(env *anypb.Any) (Msg, error) {
	if env == nil {
		return nil, errors.New("nil envelope")
	}

	return r.Decode(env.GetTypeUrl(), env.GetValue())
}

// TypeURLs returns the registered type URLs in sorted order.
func (r *Registry) TypeURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.decoders))
	for url := range r.decoders {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	return urls
}
