package absacc

import (
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

const coinName = "cosmos.base.v1beta1.Coin"

const (
	coinFieldDenom  protowire.Number = 1
	coinFieldAmount protowire.Number = 2
)

// Coin is a single (denomination, amount) pair.
//
// Amount is the decimal string form of an arbitrary precision integer. It is
// carried as-is and never parsed.
type Coin struct {
	Denom  string
	Amount string
}

// NewCoin returns a Coin with the given denomination and amount.
func NewCoin(denom, amount string) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return c.Amount + c.Denom
}

// Size returns the encoded size of the coin.
func (c Coin) Size() int {
	return sizeString(coinFieldDenom, c.Denom) + sizeString(coinFieldAmount, c.Amount)
}

// Marshal encodes the coin.
func (c Coin) Marshal() []byte {
	b := make([]byte, 0, c.Size())
	b = appendString(b, coinFieldDenom, c.Denom)
	b = appendString(b, coinFieldAmount, c.Amount)
	return b
}

// Unmarshal decodes b into the coin. The coin is left unmodified on error.
func (c *Coin) Unmarshal(b []byte) error {
	var out Coin
	err := consumeFields(coinName, b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case coinFieldDenom:
			out.Denom, n, err = consumeString(coinName, num, typ, b)
		case coinFieldAmount:
			out.Amount, n, err = consumeString(coinName, num, typ, b)
		default:
			n, err = skipField(coinName, num, typ, b)
		}
		return n, err
	})
	if err != nil {
		return err
	}

	*c = out
	return nil
}

// Coins is an ordered set of coins. Order is preserved on the wire and
// duplicate denominations are left for the receiver to reject.
type Coins []Coin

// String renders the coins in the ledger's textual convention, e.g.
// "1000uusd,5uatom".
func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}

	return strings.Join(parts, ",")
}
