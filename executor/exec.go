// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/types"
)

// Exec_Create 创建游戏
func (b *Bingo) Exec_Create(payload *types.BingoCreate, from string) (*types.Receipt, error) {
	if payload == nil {
		return nil, types.ErrInvalidParam
	}
	receipt, err := b.execute(payload.Name, from, false, func(action *Action) (*types.Receipt, error) {
		return action.GameCreate(payload)
	})
	if err != nil {
		return nil, err
	}
	b.created.Inc(1)
	return receipt, nil
}

// Exec_Join 加入游戏
func (b *Bingo) Exec_Join(payload *types.BingoJoin, from string) (*types.Receipt, error) {
	if payload == nil {
		return nil, types.ErrInvalidParam
	}
	receipt, err := b.execute(payload.Name, from, true, func(action *Action) (*types.Receipt, error) {
		return action.GameJoin(payload)
	})
	if err != nil {
		return nil, err
	}
	b.joined.Inc(1)
	return receipt, nil
}

// Exec_Draw 开号
func (b *Bingo) Exec_Draw(payload *types.BingoDraw, from string) (*types.Receipt, error) {
	if payload == nil {
		return nil, types.ErrInvalidParam
	}
	receipt, err := b.execute(payload.Name, from, false, func(action *Action) (*types.Receipt, error) {
		return action.GameDraw(payload)
	})
	if err != nil {
		return nil, err
	}
	b.drawn.Inc(1)
	return receipt, nil
}

// Exec_DeclareWin 宣告胜利
func (b *Bingo) Exec_DeclareWin(payload *types.BingoDeclare, from string) (*types.Receipt, error) {
	if payload == nil {
		return nil, types.ErrInvalidParam
	}
	receipt, err := b.execute(payload.Name, from, true, func(action *Action) (*types.Receipt, error) {
		return action.GameDeclare(payload)
	})
	if err != nil {
		return nil, err
	}
	b.won.Inc(1)
	return receipt, nil
}

// Exec_Cancel 取消游戏并退款
func (b *Bingo) Exec_Cancel(payload *types.BingoCancel, from string) (*types.Receipt, error) {
	if payload == nil {
		return nil, types.ErrInvalidParam
	}
	receipt, err := b.execute(payload.Name, from, true, func(action *Action) (*types.Receipt, error) {
		return action.GameCancel(payload)
	})
	if err != nil {
		return nil, err
	}
	b.cancelled.Inc(1)
	return receipt, nil
}

// Execute 按 action 类型分发
func (b *Bingo) Execute(action *types.BingoAction, from string) (*types.Receipt, error) {
	if action == nil {
		return nil, types.ErrInvalidParam
	}
	switch action.Ty {
	case types.BingoActionCreate:
		return b.Exec_Create(action.Create, from)
	case types.BingoActionJoin:
		return b.Exec_Join(action.Join, from)
	case types.BingoActionDraw:
		return b.Exec_Draw(action.Draw, from)
	case types.BingoActionDeclare:
		return b.Exec_DeclareWin(action.Declare, from)
	case types.BingoActionCancel:
		return b.Exec_Cancel(action.Cancel, from)
	default:
		return nil, types.ErrActionNotSupport
	}
}
