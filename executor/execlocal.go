// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/types"
)

//execLocal 由操作日志推导本地数据：状态索引、事件流水和全局统计。
//调用方持有提交锁，事件序号在这里单调递增。
func (b *Bingo) execLocal(receipt *types.Receipt) ([]*types.KeyValue, error) {
	var set []*types.KeyValue
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	stats := b.loadStats()
	statsDirty := false
	for _, item := range receipt.Logs {
		switch item.Ty {
		case types.TyLogBingoCreate, types.TyLogBingoJoin, types.TyLogBingoDraw,
			types.TyLogBingoDeclare, types.TyLogBingoCancel:
			var bingolog types.ReceiptBingo
			err := types.Decode(item.Log, &bingolog)
			if err != nil {
				return nil, err
			}
			set = append(set, b.saveGameIndex(&bingolog)...)
			set = append(set, b.saveEvent(item.Ty, &bingolog))

			if item.Ty == types.TyLogBingoCreate {
				stats.CreatedCount++
				statsDirty = true
			} else if item.Ty == types.TyLogBingoCancel {
				stats.CancelledCount++
				statsDirty = true
			}
		}
	}
	if statsDirty {
		set = append(set, &types.KeyValue{Key: calcBingoStatsKey(), Value: types.Encode(stats)})
	}
	return set, nil
}

//saveGameIndex 维护按状态检索的索引，状态迁移时删旧加新
func (b *Bingo) saveGameIndex(bingolog *types.ReceiptBingo) (kvs []*types.KeyValue) {
	if bingolog.PrevStatus > 0 && bingolog.PrevStatus != bingolog.Status {
		kvs = append(kvs, delGameIndex(bingolog.Name, bingolog.PrevStatus))
	}
	kvs = append(kvs, addGameIndex(bingolog.Name, bingolog.Status))
	return kvs
}

func addGameIndex(name string, status int32) *types.KeyValue {
	return &types.KeyValue{Key: calcBingoStatusKey(status, name), Value: []byte(name)}
}

func delGameIndex(name string, status int32) *types.KeyValue {
	return &types.KeyValue{Key: calcBingoStatusKey(status, name), Value: nil}
}

func (b *Bingo) saveEvent(ty int32, bingolog *types.ReceiptBingo) *types.KeyValue {
	b.eventSeq++
	event := &types.BingoEvent{
		Seq:       b.eventSeq,
		Ty:        ty,
		Ts:        bingolog.Ts,
		Name:      bingolog.Name,
		Addr:      bingolog.Addr,
		EntryFee:  bingolog.EntryFee,
		StartTime: bingolog.StartTime,
		Number:    bingolog.Number,
		Winner:    bingolog.Winner,
		Pool:      bingolog.Pool,
		Card:      bingolog.Card,
	}
	return &types.KeyValue{Key: calcBingoEventKey(event.Seq), Value: types.Encode(event)}
}

func (b *Bingo) loadStats() *types.RegistryStats {
	stats := &types.RegistryStats{}
	data, err := b.store.Get(calcBingoStatsKey())
	if err != nil {
		return stats
	}
	if err := types.Decode(data, stats); err != nil {
		blog.Error("loadStats", "err", err)
		return &types.RegistryStats{}
	}
	return stats
}
