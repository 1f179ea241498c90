// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	game := &BingoGame{
		Name:       "room1",
		CreateAddr: "1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S",
		EntryFee:   100 * Coin,
		StartTime:  1700000000,
		CreateTime: 1699999000,
		Status:     BingoStatusPending,
		Players: []*BingoPlayer{
			{Addr: "1Q8hGLfoGe63efeWa8fJ4Pnukhkngt6poK", JoinTime: 1699999100,
				Card: &BingoCard{Columns: [][]int32{{1, 2, 3, 4, 5}}}},
		},
		DrawnNumbers: []int32{7, 33, 61},
	}
	data := Encode(game)
	var decoded BingoGame
	err := Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, game.Name, decoded.Name)
	assert.Equal(t, game.EntryFee, decoded.EntryFee)
	assert.Equal(t, game.DrawnNumbers, decoded.DrawnNumbers)
	require.Len(t, decoded.Players, 1)
	assert.Equal(t, game.Players[0].Addr, decoded.Players[0].Addr)
	assert.Equal(t, game.Players[0].Card.Columns, decoded.Players[0].Card.Columns)
}

func TestActionName(t *testing.T) {
	tests := map[int32]string{
		BingoActionCreate:  "create",
		BingoActionJoin:    "join",
		BingoActionDraw:    "draw",
		BingoActionDeclare: "declare",
		BingoActionCancel:  "cancel",
		0:                  "unknown",
	}
	for ty, name := range tests {
		action := &BingoAction{Ty: ty}
		assert.Equal(t, name, action.ActionName())
	}
}

func TestGetPlayer(t *testing.T) {
	game := &BingoGame{
		Players: []*BingoPlayer{
			{Addr: "addr1"},
			{Addr: "addr2"},
		},
	}
	assert.NotNil(t, game.GetPlayer("addr1"))
	assert.NotNil(t, game.GetPlayer("addr2"))
	assert.Nil(t, game.GetPlayer("addr3"))
}

func TestHasDrawn(t *testing.T) {
	game := &BingoGame{DrawnNumbers: []int32{5, 17, 42}}
	assert.True(t, game.HasDrawn(17))
	assert.False(t, game.HasDrawn(18))
}

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(100*Coin))
}

func TestNewErrReceipt(t *testing.T) {
	receipt := NewErrReceipt(ErrGameNotFound)
	assert.Equal(t, int32(ExecErr), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(TyLogErr), receipt.Logs[0].Ty)
	assert.Equal(t, ErrGameNotFound.Error(), string(receipt.Logs[0].Log))
}
