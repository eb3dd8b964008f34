// package dynvar holds the widths and hashing shared by every package in the module.
package dynvar

import (
	"encoding/base64"

	"lukechampine.com/blake3"
)

const (
	// IntegerWidth is the size of an Integer payload in bytes.
	// It is fixed at 8 on every platform, regardless of the width of a native long.
	IntegerWidth = 8
	// FloatWidth is the size of a Float payload in bytes.
	FloatWidth = 8
	// BooleanWidth is the size of a Boolean payload in bytes.
	BooleanWidth = 1

	// Terminator ends the byte image of a Text payload.
	Terminator = byte(0)

	IDSize = 32
	// Base64Alphabet is used when encoding IDs as base64 strings.
	// It is a URL and filepath safe encoding, which maintains ordering.
	Base64Alphabet = "-0123456789" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + "_" + "abcdefghijklmnopqrstuvwxyz"
)

// ID is a 256 bit hash
type ID [IDSize]byte

var enc = base64.NewEncoding(Base64Alphabet).WithPadding(base64.NoPadding)

func (id ID) String() string {
	return enc.EncodeToString(id[:])
}

func (id ID) IsZero() bool {
	return id == (ID{})
}

// Hash calculates the hash of x.
// If key == nil, then the hash is unkeyed.
// If key != nil, then the hash will be keyed with the key.
func Hash(key *ID, x []byte) (ret ID) {
	var k []byte
	if key != nil {
		k = key[:]
	}
	h := blake3.New(IDSize, k)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}
