// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/account"
	dbm "github.com/33cn/bingo/common/db"
	"github.com/33cn/bingo/types"
	"github.com/google/uuid"
)

const (
	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int32(20) //默认一次取多少条记录
)

// Action 绑定到单次操作的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	escrow       *escrowAccount
	fromaddr     string
	operator     string
	blocktime    int64
	opid         string
}

// NewAction new action
func NewAction(b *Bingo, sdb dbm.KV, fromaddr string) *Action {
	coins := account.NewCoinsAccount()
	coins.SetDB(sdb)
	return &Action{
		coinsAccount: coins,
		db:           sdb,
		escrow:       newEscrowAccount(coins, b.execName),
		fromaddr:     fromaddr,
		operator:     b.operator,
		blocktime:    b.now(),
		opid:         uuid.New().String(),
	}
}

func isTerminal(game *types.BingoGame) bool {
	return game.Status == types.BingoStatusFinished || game.Status == types.BingoStatusCancelled
}

func readGame(db dbm.KV, name string) (*types.BingoGame, error) {
	data, err := db.Get(Key(name))
	if err != nil {
		return nil, err
	}
	var game types.BingoGame
	//decode
	err = types.Decode(data, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (action *Action) readGame(name string) (*types.BingoGame, error) {
	game, err := readGame(action.db, name)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (action *Action) saveGame(game *types.BingoGame) (kvset []*types.KeyValue) {
	value := types.Encode(game)
	action.db.Set(Key(game.Name), value)
	kvset = append(kvset, &types.KeyValue{Key: Key(game.Name), Value: value})
	return kvset
}

// GetReceiptLog 构造操作日志，事件回放和本地索引都依赖这份数据
func (action *Action) GetReceiptLog(ty int32, game *types.BingoGame, prevStatus int32) *types.ReceiptLog {
	log := &types.ReceiptLog{}
	log.Ty = ty
	r := &types.ReceiptBingo{}
	r.Name = game.Name
	r.Addr = action.fromaddr
	r.Status = game.Status
	r.PrevStatus = prevStatus
	r.EntryFee = game.EntryFee
	r.StartTime = game.StartTime
	r.Ts = action.blocktime
	switch ty {
	case types.TyLogBingoJoin:
		if player := game.GetPlayer(action.fromaddr); player != nil {
			r.Card = player.Card
		}
	case types.TyLogBingoDraw:
		if n := len(game.DrawnNumbers); n > 0 {
			r.Number = game.DrawnNumbers[n-1]
		}
	case types.TyLogBingoDeclare:
		r.Winner = game.Winner
		r.Pool = game.EntryFee * int64(len(game.Players))
	case types.TyLogBingoCancel:
		r.Pool = game.EntryFee * int64(len(game.Players))
	}
	log.Log = types.Encode(r)
	return log
}

// GameCreate 运营方创建一局游戏
func (action *Action) GameCreate(create *types.BingoCreate) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.operator == "" {
		return nil, types.ErrBingoNotInitialized
	}
	if action.fromaddr != action.operator {
		blog.Error("GameCreate", "addr", action.fromaddr, "op", action.opid, "err", types.ErrNotOperator)
		return nil, types.ErrNotOperator
	}
	if create.StartTime <= action.blocktime {
		return nil, types.ErrInvalidStartTime
	}
	if !types.CheckAmount(create.EntryFee) {
		return nil, types.ErrInvalidFeeAmount
	}
	if create.Name == "" || len(create.Name) > types.GameNameLenLimit {
		return nil, types.ErrInvalidParam
	}

	//名字只在未结束的游戏里要求唯一，已结束的游戏允许重建同名新局
	var prevStatus int32
	old, err := readGame(action.db, create.Name)
	if err == nil {
		if !isTerminal(old) {
			return nil, types.ErrGameNameTaken
		}
		prevStatus = old.Status
	} else if err != types.ErrNotFound {
		return nil, err
	}

	game := &types.BingoGame{
		Name:       create.Name,
		CreateAddr: action.fromaddr,
		EntryFee:   create.EntryFee,
		StartTime:  create.StartTime,
		CreateTime: action.blocktime,
		Status:     types.BingoStatusPending,
	}

	blog.Debug("GameCreate", "name", game.Name, "entryFee", game.EntryFee, "startTime", game.StartTime, "op", action.opid)
	logs = append(logs, action.GetReceiptLog(types.TyLogBingoCreate, game, prevStatus))
	kv = append(kv, action.saveGame(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameJoin 玩家下注入局
func (action *Action) GameJoin(join *types.BingoJoin) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.operator == "" {
		return nil, types.ErrBingoNotInitialized
	}
	game, err := action.readGame(join.Name)
	if err != nil {
		blog.Error("GameJoin", "addr", action.fromaddr, "name", join.Name, "op", action.opid, "err", err)
		return nil, err
	}
	if isTerminal(game) {
		return nil, types.ErrGameEnded
	}
	if action.blocktime >= game.StartTime {
		return nil, types.ErrGameAlreadyStarted
	}
	if err := checkCard(join.Card); err != nil {
		return nil, err
	}
	if game.GetPlayer(action.fromaddr) != nil {
		return nil, types.ErrAlreadyJoined
	}
	acc := action.coinsAccount.LoadAccount(action.fromaddr)
	if acc.GetBalance() < game.EntryFee {
		blog.Error("GameJoin", "addr", action.fromaddr, "name", join.Name, "balance", acc.GetBalance(),
			"entryFee", game.EntryFee, "op", action.opid, "err", types.ErrInsufficientFunds)
		return nil, types.ErrInsufficientFunds
	}

	receipt, err := action.escrow.Credit(action.fromaddr, game.EntryFee)
	if err != nil {
		blog.Error("GameJoin.Credit", "addr", action.fromaddr, "name", join.Name, "amount", game.EntryFee,
			"op", action.opid, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	game.Players = append(game.Players, &types.BingoPlayer{
		Addr:     action.fromaddr,
		Card:     join.Card,
		JoinTime: action.blocktime,
	})

	blog.Debug("GameJoin", "addr", action.fromaddr, "name", game.Name, "players", len(game.Players), "op", action.opid)
	logs = append(logs, action.GetReceiptLog(types.TyLogBingoJoin, game, game.Status))
	kv = append(kv, action.saveGame(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameDraw 运营方开出一个号码
func (action *Action) GameDraw(draw *types.BingoDraw) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.operator == "" {
		return nil, types.ErrBingoNotInitialized
	}
	if action.fromaddr != action.operator {
		blog.Error("GameDraw", "addr", action.fromaddr, "name", draw.Name, "op", action.opid, "err", types.ErrNotOperator)
		return nil, types.ErrNotOperator
	}
	game, err := action.readGame(draw.Name)
	if err != nil {
		return nil, err
	}
	if isTerminal(game) {
		return nil, types.ErrGameEnded
	}
	if action.blocktime < game.StartTime {
		return nil, types.ErrGameNotStartedYet
	}
	if draw.Number < 1 || draw.Number > types.MaxDrawNumber {
		return nil, types.ErrInvalidNumber
	}
	if game.HasDrawn(draw.Number) {
		return nil, types.ErrDuplicateNumber
	}

	game.DrawnNumbers = append(game.DrawnNumbers, draw.Number)

	blog.Debug("GameDraw", "name", game.Name, "number", draw.Number, "drawn", len(game.DrawnNumbers), "op", action.opid)
	logs = append(logs, action.GetReceiptLog(types.TyLogBingoDraw, game, game.Status))
	kv = append(kv, action.saveGame(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameDeclare 玩家宣告胜利，校验通过后整个奖池一次性派给宣告者
func (action *Action) GameDeclare(declare *types.BingoDeclare) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.operator == "" {
		return nil, types.ErrBingoNotInitialized
	}
	game, err := action.readGame(declare.Name)
	if err != nil {
		blog.Error("GameDeclare", "addr", action.fromaddr, "name", declare.Name, "op", action.opid, "err", err)
		return nil, err
	}
	if isTerminal(game) {
		return nil, types.ErrGameEnded
	}
	if action.blocktime < game.StartTime {
		return nil, types.ErrGameNotStartedYet
	}
	player := game.GetPlayer(action.fromaddr)
	if player == nil {
		return nil, types.ErrNotJoined
	}
	if !checkWin(game.DrawnNumbers, player.Card) {
		return nil, types.ErrNoWin
	}

	pool := game.EntryFee * int64(len(game.Players))
	receipt, err := action.escrow.Payout(action.fromaddr, pool)
	if err != nil {
		blog.Error("GameDeclare.Payout", "addr", action.fromaddr, "name", game.Name, "pool", pool,
			"op", action.opid, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	prevStatus := game.Status
	game.Status = types.BingoStatusFinished
	game.Winner = action.fromaddr
	game.CloseTime = action.blocktime

	blog.Debug("GameDeclare", "addr", action.fromaddr, "name", game.Name, "pool", pool, "op", action.opid)
	logs = append(logs, action.GetReceiptLog(types.TyLogBingoDeclare, game, prevStatus))
	kv = append(kv, action.saveGame(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameCancel 运营方取消游戏，强制把每个玩家的入场费原路退回
func (action *Action) GameCancel(cancel *types.BingoCancel) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if action.operator == "" {
		return nil, types.ErrBingoNotInitialized
	}
	if action.fromaddr != action.operator {
		blog.Error("GameCancel", "addr", action.fromaddr, "name", cancel.Name, "op", action.opid, "err", types.ErrNotOperator)
		return nil, types.ErrNotOperator
	}
	game, err := action.readGame(cancel.Name)
	if err != nil {
		return nil, err
	}
	if isTerminal(game) {
		return nil, types.ErrGameEnded
	}

	//任何一笔退款失败整个操作回滚，游戏保持未结束可以重试
	for _, player := range game.Players {
		receipt, err := action.escrow.Payout(player.Addr, game.EntryFee)
		if err != nil {
			blog.Error("GameCancel.Refund", "addr", player.Addr, "name", game.Name, "amount", game.EntryFee,
				"op", action.opid, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	prevStatus := game.Status
	game.Status = types.BingoStatusCancelled
	game.CloseTime = action.blocktime

	blog.Debug("GameCancel", "name", game.Name, "refunded", len(game.Players), "op", action.opid)
	logs = append(logs, action.GetReceiptLog(types.TyLogBingoCancel, game, prevStatus))
	kv = append(kv, action.saveGame(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
