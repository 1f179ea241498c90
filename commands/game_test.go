// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/33cn/bingo/types"
	"github.com/stretchr/testify/assert"
)

func TestParseCoinAmount(t *testing.T) {
	amount, err := parseCoinAmount("10")
	assert.NoError(t, err)
	assert.Equal(t, 10*types.Coin, amount)

	amount, err = parseCoinAmount("0.5")
	assert.NoError(t, err)
	assert.Equal(t, types.Coin/2, amount)

	amount, err = parseCoinAmount("1.00000001")
	assert.NoError(t, err)
	assert.Equal(t, types.Coin+1, amount)

	_, err = parseCoinAmount("ten")
	assert.Error(t, err)
}

func TestParseCard(t *testing.T) {
	card, err := parseCard("[[1,2,3,4,5],[16,17,18,19,20],[31,32,0,34,35],[46,47,48,49,50],[61,62,63,64,65]]")
	assert.NoError(t, err)
	assert.Len(t, card.Columns, 5)
	assert.Equal(t, int32(0), card.Columns[2][2])
	assert.Equal(t, int32(61), card.Columns[4][0])

	_, err = parseCard("{not a card}")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	status, err := parseStatus("pending")
	assert.NoError(t, err)
	assert.Equal(t, types.BingoStatusPending, status)

	status, err = parseStatus("Active")
	assert.NoError(t, err)
	assert.Equal(t, types.BingoStatusActive, status)

	status, err = parseStatus("FINISHED")
	assert.NoError(t, err)
	assert.Equal(t, types.BingoStatusFinished, status)

	status, err = parseStatus("cancelled")
	assert.NoError(t, err)
	assert.Equal(t, types.BingoStatusCancelled, status)

	_, err = parseStatus("open")
	assert.Error(t, err)
}
