// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/types"
)

//checkWin 判断卡片在已开出号码下是否连成完整的一列、一行或一条对角线
//纯函数，不修改入参
func checkWin(drawn []int32, card *types.BingoCard) bool {
	n := types.CardSize
	drawnSet := make(map[int32]bool, len(drawn))
	for _, number := range drawn {
		drawnSet[number] = true
	}

	marked := make([][]bool, n)
	for i := 0; i < n; i++ {
		marked[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			value := card.Columns[i][j]
			marked[i][j] = value == types.FreeCellValue || drawnSet[value]
		}
	}

	//整列
	for i := 0; i < n; i++ {
		full := true
		for j := 0; j < n; j++ {
			if !marked[i][j] {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	//整行
	for j := 0; j < n; j++ {
		full := true
		for i := 0; i < n; i++ {
			if !marked[i][j] {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	//两条对角线
	diag1, diag2 := true, true
	for i := 0; i < n; i++ {
		if !marked[i][i] {
			diag1 = false
		}
		if !marked[i][n-1-i] {
			diag2 = false
		}
	}
	return diag1 || diag2
}
