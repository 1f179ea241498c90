package address

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	if err != nil {
		t.Error(err)
		return
	}
	addr := PubKeyToAddress(b)
	t.Log(addr)
	require.NoError(t, CheckAddress(addr.String()))
}

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("bingo")
	require.NoError(t, CheckAddress(addr))
	//cache 命中也要返回同样的值
	assert.Equal(t, addr, ExecAddress("bingo"))
	assert.NotEqual(t, addr, ExecAddress("lottery"))
}

func TestCheckAddress(t *testing.T) {
	err := CheckAddress("this is not an address")
	assert.NotNil(t, err)

	addr := PubKeyToAddress(ExecPubKey("ticket"))
	err = CheckAddress(addr.String())
	require.NoError(t, err)

	a, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.String(), a.String())
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("ticket")
	}
}
