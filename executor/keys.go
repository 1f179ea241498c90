// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/bingo/types"
)

//Key 游戏状态数据主键
func Key(name string) (key []byte) {
	key = append(key, []byte("mavl-"+types.BingoX+"-game-")...)
	key = append(key, []byte(name)...)
	return key
}

//GenesisKey 创世资产是否已经初始化的标记
func GenesisKey() (key []byte) {
	key = append(key, []byte("mavl-"+types.BingoX+"-genesis")...)
	return key
}

func calcBingoStatusPrefix(status int32) []byte {
	key := fmt.Sprintf("bingo-game:%d:", status)
	return []byte(key)
}

func calcBingoStatusKey(status int32, name string) []byte {
	key := fmt.Sprintf("bingo-game:%d:%s", status, name)
	return []byte(key)
}

func calcBingoEventPrefix() []byte {
	return []byte("bingo-event:")
}

func calcBingoEventKey(seq int64) []byte {
	key := fmt.Sprintf("bingo-event:%018d", seq)
	return []byte(key)
}

func calcBingoStatsKey() []byte {
	return []byte("bingo-stats")
}
