package signing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Key and query from the exchange's published signed-endpoint example.
const (
	docSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	docQuery  = "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&recvWindow=5000&timestamp=1499827319559"
	docSig    = "C8DB56825AE71D6D79447849E617115F4A920FA2ACDCAB2B053C4B2838BD6B71"
)

func TestSignKnownVector(t *testing.T) {
	require.Equal(t, docSig, Sign(docSecret, docQuery))
}

func TestSignDeterministic(t *testing.T) {
	first := Sign(docSecret, docQuery)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sign(docSecret, docQuery))
	}
}

func TestSignSensitivity(t *testing.T) {
	base := Sign(docSecret, docQuery)

	// Flipping a single character of the payload must change the digest.
	mutated := strings.Replace(docQuery, "LTCBTC", "LTCBTD", 1)
	assert.NotEqual(t, base, Sign(docSecret, mutated))

	// A different key must change the digest too.
	assert.NotEqual(t, base, Sign(docSecret+"x", docQuery))
}

func TestSignOrderDependent(t *testing.T) {
	// The signature covers parameters in append order, so swapping two
	// parameters yields a different digest.
	reordered := "side=BUY&symbol=LTCBTC&type=LIMIT&timeInForce=GTC&quantity=1&recvWindow=5000&timestamp=1499827319559"
	assert.NotEqual(t, Sign(docSecret, docQuery), Sign(docSecret, reordered))
}

func TestSignFormat(t *testing.T) {
	sig := Sign("secret", "q=1")
	require.Len(t, sig, 64) // 32 bytes, two hex digits each
	assert.Equal(t, strings.ToUpper(sig), sig)
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify(docSecret, docQuery, docSig))
	assert.True(t, Verify(docSecret, docQuery, strings.ToLower(docSig)))
	assert.False(t, Verify(docSecret, docQuery+"&x=1", docSig))
}
