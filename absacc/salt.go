package absacc

import (
	"github.com/google/uuid"
)

// NewSalt returns 16 random bytes suitable for MsgRegisterAccount.Salt.
func NewSalt() []byte {
	id := uuid.New()
	return id[:]
}
