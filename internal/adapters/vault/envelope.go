package vault

import "fmt"

const (
	saltSize   = 16
	nonceSize  = 16
	tagSize    = 16
	headerSize = saltSize + nonceSize + tagSize
)

// envelope is the decoded form of a stored secret:
// salt || nonce || tag || ciphertext.
type envelope struct {
	salt       []byte
	nonce      []byte
	tag        []byte
	ciphertext []byte
}

func pack(e envelope) []byte {
	out := make([]byte, 0, headerSize+len(e.ciphertext))
	out = append(out, e.salt...)
	out = append(out, e.nonce...)
	out = append(out, e.tag...)
	out = append(out, e.ciphertext...)
	return out
}

// unpack slices data without copying; callers must not mutate data afterwards.
func unpack(data []byte) (envelope, error) {
	if len(data) < headerSize {
		return envelope{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrFormat, len(data), headerSize)
	}

	return envelope{
		salt:       data[:saltSize],
		nonce:      data[saltSize : saltSize+nonceSize],
		tag:        data[saltSize+nonceSize : headerSize],
		ciphertext: data[headerSize:],
	}, nil
}
