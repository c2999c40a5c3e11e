package absacc

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Type URLs of the abstractaccount.v1 messages. The receiving chain routes
// envelopes by exact match on these strings.
const (
	TypeURLMsgRegisterAccount         = "/abstractaccount.v1.MsgRegisterAccount"
	TypeURLMsgRegisterAccountResponse = "/abstractaccount.v1.MsgRegisterAccountResponse"
	TypeURLEventAccountRegistered     = "/abstractaccount.v1.EventAccountRegistered"
)

const (
	registerAccountName         = "abstractaccount.v1.MsgRegisterAccount"
	registerAccountResponseName = "abstractaccount.v1.MsgRegisterAccountResponse"
	accountRegisteredName       = "abstractaccount.v1.EventAccountRegistered"
)

const (
	registerFieldSender protowire.Number = 1
	registerFieldCodeID protowire.Number = 2
	registerFieldMsg    protowire.Number = 3
	registerFieldFunds  protowire.Number = 4
	registerFieldSalt   protowire.Number = 5

	responseFieldAddress protowire.Number = 1
	responseFieldData    protowire.Number = 2

	eventFieldCreator      protowire.Number = 1
	eventFieldCodeID       protowire.Number = 2
	eventFieldContractAddr protowire.Number = 3
)

var (
	_ Msg = &MsgRegisterAccount{}
	_ Msg = &MsgRegisterAccountResponse{}
	_ Msg = &EventAccountRegistered{}
)

// MsgRegisterAccount requests the creation of an abstract account by
// instantiating the contract code CodeID on behalf of Sender.
type MsgRegisterAccount struct {
	Sender string
	CodeID uint64
	// Msg is the opaque instantiation payload handed to the contract.
	Msg   []byte
	Funds Coins
	// Salt is used by the chain to derive a deterministic account address.
	Salt []byte
}

// NewMsgRegisterAccount returns a registration request.
func NewMsgRegisterAccount(sender string, codeID uint64, msg []byte, funds Coins, salt []byte) *MsgRegisterAccount {
	return &MsgRegisterAccount{
		Sender: sender,
		CodeID: codeID,
		Msg:    msg,
		Funds:  funds,
		Salt:   salt,
	}
}

// TypeURL implements Msg.TypeURL.
func (m *MsgRegisterAccount) TypeURL() string {
	return TypeURLMsgRegisterAccount
}

// Size returns the encoded size of the message.
func (m *MsgRegisterAccount) Size() int {
	size := sizeString(registerFieldSender, m.Sender)
	size += sizeUint64(registerFieldCodeID, m.CodeID)
	size += sizeBytes(registerFieldMsg, m.Msg)
	for _, c := range m.Funds {
		size += protowire.SizeTag(registerFieldFunds) + protowire.SizeBytes(c.Size())
	}
	size += sizeBytes(registerFieldSalt, m.Salt)
	return size
}

// Marshal implements Msg.Marshal.
//
// The encoding is deterministic: fields are written in tag order and funds in
// slice order.
func (m *MsgRegisterAccount) Marshal() []byte {
	b := make([]byte, 0, m.Size())
	b = appendString(b, registerFieldSender, m.Sender)
	b = appendUint64(b, registerFieldCodeID, m.CodeID)
	b = appendBytes(b, registerFieldMsg, m.Msg)
	for _, c := range m.Funds {
		// Coins are always written, even when empty, to keep positions in
		// the repeated field intact.
		b = protowire.AppendTag(b, registerFieldFunds, protowire.BytesType)
		b = protowire.AppendBytes(b, c.Marshal())
	}
	b = appendBytes(b, registerFieldSalt, m.Salt)
	return b
}

// Unmarshal implements Msg.Unmarshal.
func (m *MsgRegisterAccount) Unmarshal(b []byte) error {
	var out MsgRegisterAccount
	err := consumeFields(registerAccountName, b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case registerFieldSender:
			out.Sender, n, err = consumeString(registerAccountName, num, typ, b)
		case registerFieldCodeID:
			out.CodeID, n, err = consumeUint64(registerAccountName, num, typ, b)
		case registerFieldMsg:
			out.Msg, n, err = consumeBytes(registerAccountName, num, typ, b)
		case registerFieldFunds:
			var raw []byte
			if raw, n, err = consumeRaw(registerAccountName, num, typ, b); err != nil {
				return 0, err
			}

			var c Coin
			if err := c.Unmarshal(raw); err != nil {
				return 0, newDecodeError(registerAccountName, num, err)
			}
			out.Funds = append(out.Funds, c)
		case registerFieldSalt:
			out.Salt, n, err = consumeBytes(registerAccountName, num, typ, b)
		default:
			n, err = skipField(registerAccountName, num, typ, b)
		}
		return n, err
	})
	if err != nil {
		return err
	}

	*m = out
	return nil
}

// MsgRegisterAccountResponse is returned by the chain once the account has
// been created.
type MsgRegisterAccountResponse struct {
	Address string
	Data    []byte
}

// UnmarshalRegisterAccountResponse decodes a response from its wire bytes.
func UnmarshalRegisterAccountResponse(b []byte) (*MsgRegisterAccountResponse, error) {
	var resp MsgRegisterAccountResponse
	if err := resp.Unmarshal(b); err != nil {
		return nil, err
	}

	return &resp, nil
}

// TypeURL implements Msg.TypeURL.
func (m *MsgRegisterAccountResponse) TypeURL() string {
	return TypeURLMsgRegisterAccountResponse
}

// Marshal implements Msg.Marshal.
func (m *MsgRegisterAccountResponse) Marshal() []byte {
	b := make([]byte, 0, sizeString(responseFieldAddress, m.Address)+sizeBytes(responseFieldData, m.Data))
	b = appendString(b, responseFieldAddress, m.Address)
	b = appendBytes(b, responseFieldData, m.Data)
	return b
}

// Unmarshal implements Msg.Unmarshal.
func (m *MsgRegisterAccountResponse) Unmarshal(b []byte) error {
	var out MsgRegisterAccountResponse
	err := consumeFields(registerAccountResponseName, b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case responseFieldAddress:
			out.Address, n, err = consumeString(registerAccountResponseName, num, typ, b)
		case responseFieldData:
			out.Data, n, err = consumeBytes(registerAccountResponseName, num, typ, b)
		default:
			n, err = skipField(registerAccountResponseName, num, typ, b)
		}
		return n, err
	})
	if err != nil {
		return err
	}

	*m = out
	return nil
}

// EventAccountRegistered is emitted by the chain when an account is
// registered.
type EventAccountRegistered struct {
	Creator      string
	CodeID       uint64
	ContractAddr string
}

// TypeURL implements Msg.TypeURL.
func (e *EventAccountRegistered) TypeURL() string {
	return TypeURLEventAccountRegistered
}

// Marshal implements Msg.Marshal.
func (e *EventAccountRegistered) Marshal() []byte {
	var b []byte
	b = appendString(b, eventFieldCreator, e.Creator)
	b = appendUint64(b, eventFieldCodeID, e.CodeID)
	b = appendString(b, eventFieldContractAddr, e.ContractAddr)
	return b
}

// Unmarshal implements Msg.Unmarshal.
func (e *EventAccountRegistered) Unmarshal(b []byte) error {
	var out EventAccountRegistered
	err := consumeFields(accountRegisteredName, b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case eventFieldCreator:
			out.Creator, n, err = consumeString(accountRegisteredName, num, typ, b)
		case eventFieldCodeID:
			out.CodeID, n, err = consumeUint64(accountRegisteredName, num, typ, b)
		case eventFieldContractAddr:
			out.ContractAddr, n, err = consumeString(accountRegisteredName, num, typ, b)
		default:
			n, err = skipField(accountRegisteredName, num, typ, b)
		}
		return n, err
	})
	if err != nil {
		return err
	}

	*e = out
	return nil
}
