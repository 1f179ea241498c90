// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/bingo/common/db"
	"github.com/33cn/bingo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb() *DB {
	//构造账户数据库
	accCoin := NewCoinsAccount()
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin.SetDB(stroedb)
	return accCoin
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)
}

func TestLoadAccount(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	acc := accCoin.LoadAccount(addr1)
	require.Equal(t, int64(1000*1e8), acc.Balance)

	//不存在的地址返回零值账户
	acc = accCoin.LoadAccount(addr3)
	require.Equal(t, int64(0), acc.Balance)
	require.Equal(t, addr3, acc.Addr)
}

func TestCheckTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr1, addr2, 2000*1e8)
	require.Equal(t, types.ErrNoBalance, err)

	err = accCoin.CheckTransfer(addr1, addr2, 0)
	require.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	t.Logf("Coin from addr balance [%d] to addr balance [%d]",
		accCoin.LoadAccount(addr1).Balance,
		accCoin.LoadAccount(addr2).Balance)
	require.Equal(t, int64(1000*1e8-10*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(900*1e8+10*1e8), accCoin.LoadAccount(addr2).Balance)

	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.Logs, 2)
	assert.Len(t, receipt.KV, 2)
	for _, l := range receipt.Logs {
		assert.Equal(t, int32(types.TyLogTransfer), l.Ty)
	}
}

func TestTransferFail(t *testing.T) {
	accCoin := GenerAccDb()
	accCoin.GenerAccData()

	//余额不足
	_, err := accCoin.Transfer(addr2, addr1, 2000*1e8)
	require.Equal(t, types.ErrNoBalance, err)

	//自己转自己
	_, err = accCoin.Transfer(addr1, addr1, 10*1e8)
	require.Equal(t, types.ErrSendSameToRecv, err)

	//非法金额
	_, err = accCoin.Transfer(addr1, addr2, -1)
	require.Equal(t, types.ErrAmount, err)

	//失败的转账不改余额
	require.Equal(t, int64(1000*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr2).Balance)
}

func TestGenesisInit(t *testing.T) {
	accCoin := GenerAccDb()

	receipt, err := accCoin.GenesisInit(addr1, 10000*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(10000*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)

	//重复初始化是累加的
	_, err = accCoin.GenesisInit(addr1, 5000*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(15000*1e8), accCoin.LoadAccount(addr1).Balance)
}

func TestDeposit(t *testing.T) {
	accCoin := GenerAccDb()

	receipt, err := accCoin.Deposit(addr1, 100*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(100*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogDeposit), receipt.Logs[0].Ty)

	_, err = accCoin.Deposit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestWithdraw(t *testing.T) {
	accCoin := GenerAccDb()

	_, err := accCoin.Deposit(addr1, 100*1e8)
	require.NoError(t, err)

	receipt, err := accCoin.Withdraw(addr1, 30*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(70*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogWithdraw), receipt.Logs[0].Ty)

	//余额不足
	_, err = accCoin.Withdraw(addr1, 200*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	require.Equal(t, int64(70*1e8), accCoin.LoadAccount(addr1).Balance)
}

func TestGetKVSet(t *testing.T) {
	accCoin := GenerAccDb()
	account := &types.Account{Balance: 10 * 1e8, Addr: addr1}
	set := accCoin.GetKVSet(account)
	require.Len(t, set, 1)
	assert.Equal(t, accCoin.AccountKey(addr1), set[0].Key)

	var decoded types.Account
	err := types.Decode(set[0].Value, &decoded)
	require.NoError(t, err)
	assert.Equal(t, account.Balance, decoded.Balance)
}
