package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// SessionKeyLength is the size of generated cookie signing keys
const SessionKeyLength = 32

var ErrWeakKey = errors.New("session key too short")

// RandomBytes returns n bytes read from the system CSPRNG
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// SessionKeys converts configured keys into cookie key pairs.
// When none is configured a single random key is generated and
// generated is true.
func SessionKeys(configured []string) (keys [][]byte, generated bool, err error) {
	if len(configured) == 0 {
		key, err := RandomBytes(SessionKeyLength)
		if err != nil {
			return nil, false, errors.Wrap(err, "could not generate session key")
		}

		return [][]byte{key}, true, nil
	}

	keys = make([][]byte, 0, len(configured))
	for idx, k := range configured {
		if len(k) < SessionKeyLength {
			return nil, false, errors.Wrapf(ErrWeakKey, "key #%d has %d bytes, %d required", idx, len(k), SessionKeyLength)
		}

		keys = append(keys, []byte(k))
	}

	return keys, false, nil
}
