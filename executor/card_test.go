// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/bingo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//testCard 每列取区间前 5 个值，中心格置为免费格
func testCard() *types.BingoCard {
	card := &types.BingoCard{Columns: make([][]int32, types.CardSize)}
	for i := 0; i < types.CardSize; i++ {
		card.Columns[i] = make([]int32, types.CardSize)
		for j := 0; j < types.CardSize; j++ {
			card.Columns[i][j] = int32(i*types.CardColumnSpan + j + 1)
		}
	}
	card.Columns[types.FreeCellCol][types.FreeCellRow] = types.FreeCellValue
	return card
}

//testCardShift 和 testCard 错开取值，避免两张卡出现相同号码
func testCardShift() *types.BingoCard {
	card := &types.BingoCard{Columns: make([][]int32, types.CardSize)}
	for i := 0; i < types.CardSize; i++ {
		card.Columns[i] = make([]int32, types.CardSize)
		for j := 0; j < types.CardSize; j++ {
			card.Columns[i][j] = int32(i*types.CardColumnSpan + j + 6)
		}
	}
	card.Columns[types.FreeCellCol][types.FreeCellRow] = types.FreeCellValue
	return card
}

func TestCheckCardShape(t *testing.T) {
	require.NoError(t, checkCardShape(testCard()))

	assert.Equal(t, types.ErrInvalidCardShape, checkCardShape(nil))

	//少一列
	card := testCard()
	card.Columns = card.Columns[:4]
	assert.Equal(t, types.ErrInvalidCardShape, checkCardShape(card))

	//某列少一格
	card = testCard()
	card.Columns[1] = card.Columns[1][:4]
	assert.Equal(t, types.ErrInvalidCardShape, checkCardShape(card))

	//多一列
	card = testCard()
	card.Columns = append(card.Columns, []int32{1, 2, 3, 4, 5})
	assert.Equal(t, types.ErrInvalidCardShape, checkCardShape(card))
}

func TestCheckCardRange(t *testing.T) {
	require.NoError(t, checkCardRange(testCard()))
	require.NoError(t, checkCardRange(testCardShift()))

	//第 0 列越界
	card := testCard()
	card.Columns[0][0] = 16
	assert.Equal(t, types.ErrInvalidCardRange, checkCardRange(card))

	//第 4 列越下界
	card = testCard()
	card.Columns[4][0] = 60
	assert.Equal(t, types.ErrInvalidCardRange, checkCardRange(card))

	//中心格必须是免费格
	card = testCard()
	card.Columns[2][2] = 33
	assert.Equal(t, types.ErrInvalidCardRange, checkCardRange(card))

	//免费格位置以外不允许 0
	card = testCard()
	card.Columns[2][1] = 0
	assert.Equal(t, types.ErrInvalidCardRange, checkCardRange(card))

	//负值
	card = testCard()
	card.Columns[1][3] = -1
	assert.Equal(t, types.ErrInvalidCardRange, checkCardRange(card))
}

func TestCheckCard(t *testing.T) {
	require.NoError(t, checkCard(testCard()))

	//形状错误优先于取值错误
	card := testCard()
	card.Columns = card.Columns[:3]
	assert.Equal(t, types.ErrInvalidCardShape, checkCard(card))

	card = testCard()
	card.Columns[3][3] = 1
	assert.Equal(t, types.ErrInvalidCardRange, checkCard(card))
}

//校验是只读的，重复校验结果一致且不改动卡片
func TestCheckCardIdempotent(t *testing.T) {
	card := testCard()
	snapshot := types.Encode(card)
	for i := 0; i < 3; i++ {
		require.NoError(t, checkCard(card))
	}
	assert.Equal(t, snapshot, types.Encode(card))
}
