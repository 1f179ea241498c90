// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/account"
	"github.com/33cn/bingo/types"
	"github.com/pkg/errors"
)

// Query 按方法名分发查询，param 是 json 编码的请求
func (b *Bingo) Query(funcName string, param []byte) (interface{}, error) {
	switch funcName {
	case types.FuncNameQueryGameByName:
		var req types.ReqBingoInfo
		if err := types.Decode(param, &req); err != nil {
			return nil, errors.Wrapf(err, "decode %s param", funcName)
		}
		return b.Query_GetGameInfo(&req)
	case types.FuncNameQueryGameByStatus:
		var req types.ReqBingoList
		if err := types.Decode(param, &req); err != nil {
			return nil, errors.Wrapf(err, "decode %s param", funcName)
		}
		return b.Query_ListGameByStatus(&req)
	case types.FuncNameQueryRegistryStats:
		return b.Query_GetRegistryStats()
	case types.FuncNameQueryGameEvents:
		var req types.ReqBingoEvents
		if err := types.Decode(param, &req); err != nil {
			return nil, errors.Wrapf(err, "decode %s param", funcName)
		}
		return b.Query_ListEvents(&req)
	case types.FuncNameQueryBalance:
		var req types.ReqBalance
		if err := types.Decode(param, &req); err != nil {
			return nil, errors.Wrapf(err, "decode %s param", funcName)
		}
		return b.Query_GetBalance(&req)
	default:
		return nil, types.ErrQueryNotSupport
	}
}

// Query_GetGameInfo 按名字查询游戏，状态按当前时间折算
func (b *Bingo) Query_GetGameInfo(param *types.ReqBingoInfo) (*types.BingoGame, error) {
	if param == nil || param.Name == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := readGame(NewStateDB(b.store), param.Name)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrGameNotFound
		}
		return nil, err
	}
	game.Status = b.effectiveStatus(game, b.now())
	return game, nil
}

// Query_ListGameByStatus 按状态批量查询，Pending/Active 都基于未开始状态的索引再按时间过滤
func (b *Bingo) Query_ListGameByStatus(param *types.ReqBingoList) (*types.ReplyBingoList, error) {
	if param == nil {
		return nil, types.ErrInvalidParam
	}
	stored := param.Status
	switch param.Status {
	case types.BingoStatusPending, types.BingoStatusFinished, types.BingoStatusCancelled:
	case types.BingoStatusActive:
		stored = types.BingoStatusPending
	default:
		return nil, types.ErrInvalidParam
	}
	count := param.Count
	if count <= 0 {
		count = DefaultCount
	}

	ldb := NewLocalDB(b.store)
	values, err := ldb.List(calcBingoStatusPrefix(stored), nil, count, param.Direction)
	if err != nil {
		return nil, err
	}

	//防止脏索引拖垮整个查询，单条读取失败直接跳过
	sdb := NewStateDB(b.store)
	now := b.now()
	var games []*types.BingoGame
	for _, value := range values {
		game, err := readGame(sdb, string(value))
		if err != nil {
			blog.Error("ListGameByStatus", "name", string(value), "err", err)
			continue
		}
		effective := b.effectiveStatus(game, now)
		if param.Status == types.BingoStatusPending || param.Status == types.BingoStatusActive {
			if effective != param.Status {
				continue
			}
		}
		game.Status = effective
		games = append(games, game)
	}
	return &types.ReplyBingoList{Games: games}, nil
}

// Query_GetRegistryStats 全局创建和取消次数
func (b *Bingo) Query_GetRegistryStats() (*types.RegistryStats, error) {
	ldb := NewLocalDB(b.store)
	stats := &types.RegistryStats{}
	data, err := ldb.Get(calcBingoStatsKey())
	if err != nil {
		//尚无任何记录
		return stats, nil
	}
	if err := types.Decode(data, stats); err != nil {
		return nil, errors.Wrap(err, "decode registry stats")
	}
	return stats, nil
}

// Query_ListEvents 按序号倒序列出事件，fromSeq 为游标，0 表示从最新开始
func (b *Bingo) Query_ListEvents(param *types.ReqBingoEvents) (*types.ReplyBingoEvents, error) {
	if param == nil {
		return nil, types.ErrInvalidParam
	}
	count := param.Count
	if count <= 0 {
		count = DefaultCount
	}
	var key []byte
	if param.FromSeq > 0 {
		key = calcBingoEventKey(param.FromSeq)
	}

	ldb := NewLocalDB(b.store)
	values, err := ldb.List(calcBingoEventPrefix(), key, count, ListDESC)
	if err != nil {
		return nil, err
	}
	var events []*types.BingoEvent
	for _, value := range values {
		var event types.BingoEvent
		if err := types.Decode(value, &event); err != nil {
			blog.Error("ListEvents", "err", err)
			continue
		}
		events = append(events, &event)
	}
	return &types.ReplyBingoEvents{Events: events}, nil
}

// Query_GetBalance 查询地址资产
func (b *Bingo) Query_GetBalance(param *types.ReqBalance) (*types.Account, error) {
	if param == nil || param.Addr == "" {
		return nil, types.ErrInvalidParam
	}
	coins := account.NewCoinsAccount()
	coins.SetDB(NewStateDB(b.store))
	return coins.LoadAccount(param.Addr), nil
}

func (b *Bingo) effectiveStatus(game *types.BingoGame, now int64) int32 {
	if game.Status == types.BingoStatusPending && now >= game.StartTime {
		return types.BingoStatusActive
	}
	return game.Status
}
