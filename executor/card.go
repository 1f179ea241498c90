// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/types"
)

//checkCardShape 校验卡片列数和每列的格数
func checkCardShape(card *types.BingoCard) error {
	if card == nil || len(card.Columns) != types.CardSize {
		return types.ErrInvalidCardShape
	}
	for _, column := range card.Columns {
		if len(column) != types.CardSize {
			return types.ErrInvalidCardShape
		}
	}
	return nil
}

//checkCardRange 校验每列取值区间，中心格必须是免费格
func checkCardRange(card *types.BingoCard) error {
	for i, column := range card.Columns {
		min := int32(i*types.CardColumnSpan + 1)
		max := int32((i + 1) * types.CardColumnSpan)
		for j, value := range column {
			if i == types.FreeCellCol && j == types.FreeCellRow {
				if value != types.FreeCellValue {
					return types.ErrInvalidCardRange
				}
				continue
			}
			if value < min || value > max {
				return types.ErrInvalidCardRange
			}
		}
	}
	return nil
}

func checkCard(card *types.BingoCard) error {
	err := checkCardShape(card)
	if err != nil {
		return err
	}
	return checkCardRange(card)
}
