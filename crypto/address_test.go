package crypto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometbft/addrgen/crypto"
)

func TestAddressFromHex(t *testing.T) {
	const hexAddr = "8a0252d32e218701088f09d74143ab8004d95054"

	addr, err := crypto.AddressFromHex(hexAddr)
	require.NoError(t, err)
	assert.Len(t, addr, crypto.AddressSize)
	assert.Equal(t, hexAddr, addr.String())

	// upper case input is accepted, output is always lower case
	addr2, err := crypto.AddressFromHex(strings.ToUpper(hexAddr))
	require.NoError(t, err)
	assert.True(t, addr.Equals(addr2))
	assert.Equal(t, hexAddr, addr2.String())

	_, err = crypto.AddressFromHex(hexAddr[:38])
	require.Error(t, err)

	_, err = crypto.AddressFromHex("zz" + hexAddr[2:])
	require.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr, err := crypto.AddressFromHex("d309979b43003d2320d9f0e8ea9831a92759fb4b")
	require.NoError(t, err)

	bz, err := json.Marshal(struct {
		Address crypto.Address `json:"address"`
	}{addr})
	require.NoError(t, err)
	assert.Equal(t, `{"address":"d309979b43003d2320d9f0e8ea9831a92759fb4b"}`, string(bz))

	var out struct {
		Address crypto.Address `json:"address"`
	}
	require.NoError(t, json.Unmarshal(bz, &out))
	assert.True(t, addr.Equals(out.Address))
}
