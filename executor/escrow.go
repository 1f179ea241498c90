// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/bingo/account"
	"github.com/33cn/bingo/common/address"
	"github.com/33cn/bingo/types"
)

//escrowAccount 奖池托管账户，托管地址从执行器名派生，不对外暴露
type escrowAccount struct {
	coinsAccount *account.DB
	execaddr     string
}

func newEscrowAccount(coinsAccount *account.DB, execName string) *escrowAccount {
	return &escrowAccount{
		coinsAccount: coinsAccount,
		execaddr:     address.ExecAddress(execName),
	}
}

//Credit 玩家入金进奖池
func (e *escrowAccount) Credit(player string, amount int64) (*types.Receipt, error) {
	return e.coinsAccount.Transfer(player, e.execaddr, amount)
}

//Payout 奖池出金，派奖和退款共用
func (e *escrowAccount) Payout(recipient string, amount int64) (*types.Receipt, error) {
	return e.coinsAccount.Transfer(e.execaddr, recipient, amount)
}

//Balance 奖池当前托管总额
func (e *escrowAccount) Balance() int64 {
	return e.coinsAccount.LoadAccount(e.execaddr).GetBalance()
}
