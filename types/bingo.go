// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "encoding/json"

//BingoCard 玩家提交的 5x5 卡片，按列保存
type BingoCard struct {
	Columns [][]int32 `json:"columns"`
}

//BingoPlayer 参加游戏的玩家
type BingoPlayer struct {
	Addr     string     `json:"addr"`
	Card     *BingoCard `json:"card"`
	JoinTime int64      `json:"joinTime"`
}

//BingoGame 一局游戏的全部状态
type BingoGame struct {
	Name         string         `json:"name"`
	CreateAddr   string         `json:"createAddr"`
	EntryFee     int64          `json:"entryFee"`
	StartTime    int64          `json:"startTime"`
	CreateTime   int64          `json:"createTime"`
	CloseTime    int64          `json:"closeTime,omitempty"`
	DrawnNumbers []int32        `json:"drawnNumbers,omitempty"`
	Players      []*BingoPlayer `json:"players,omitempty"`
	Status       int32          `json:"status"`
	Winner       string         `json:"winner,omitempty"`
}

//GetPlayer 按地址查玩家，未参加返回 nil
func (g *BingoGame) GetPlayer(addr string) *BingoPlayer {
	for _, p := range g.Players {
		if p.Addr == addr {
			return p
		}
	}
	return nil
}

//HasDrawn number 是否已经开出
func (g *BingoGame) HasDrawn(number int32) bool {
	for _, n := range g.DrawnNumbers {
		if n == number {
			return true
		}
	}
	return false
}

//BingoCreate 创建游戏
type BingoCreate struct {
	Name      string `json:"name"`
	EntryFee  int64  `json:"entryFee"`
	StartTime int64  `json:"startTime"`
}

//BingoJoin 参加游戏
type BingoJoin struct {
	Name string     `json:"name"`
	Card *BingoCard `json:"card"`
}

//BingoDraw 开号
type BingoDraw struct {
	Name   string `json:"name"`
	Number int32  `json:"number"`
}

//BingoDeclare 宣告获胜
type BingoDeclare struct {
	Name string `json:"name"`
}

//BingoCancel 取消游戏
type BingoCancel struct {
	Name string `json:"name"`
}

//BingoAction 操作载荷，Ty 决定哪个字段生效
type BingoAction struct {
	Ty      int32         `json:"ty"`
	Create  *BingoCreate  `json:"create,omitempty"`
	Join    *BingoJoin    `json:"join,omitempty"`
	Draw    *BingoDraw    `json:"draw,omitempty"`
	Declare *BingoDeclare `json:"declare,omitempty"`
	Cancel  *BingoCancel  `json:"cancel,omitempty"`
}

//ActionName 获取action名字
func (action *BingoAction) ActionName() string {
	switch action.Ty {
	case BingoActionCreate:
		return "create"
	case BingoActionJoin:
		return "join"
	case BingoActionDraw:
		return "draw"
	case BingoActionDeclare:
		return "declare"
	case BingoActionCancel:
		return "cancel"
	}
	return "unknown"
}

//KeyValue kv对
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

//ReceiptLog 回执日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

//Receipt 执行回执
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

//ReceiptBingo bingo 操作回执日志体
type ReceiptBingo struct {
	Name       string     `json:"name"`
	Addr       string     `json:"addr,omitempty"`
	Status     int32      `json:"status"`
	PrevStatus int32      `json:"prevStatus,omitempty"`
	EntryFee   int64      `json:"entryFee,omitempty"`
	StartTime  int64      `json:"startTime,omitempty"`
	Number     int32      `json:"number,omitempty"`
	Winner     string     `json:"winner,omitempty"`
	Pool       int64      `json:"pool,omitempty"`
	Card       *BingoCard `json:"card,omitempty"`
	Ts         int64      `json:"ts"`
}

//BingoEvent 追加式事件记录，seq 全局递增
type BingoEvent struct {
	Seq       int64      `json:"seq"`
	Ty        int32      `json:"ty"`
	Ts        int64      `json:"ts"`
	Name      string     `json:"name"`
	Addr      string     `json:"addr,omitempty"`
	EntryFee  int64      `json:"entryFee,omitempty"`
	StartTime int64      `json:"startTime,omitempty"`
	Number    int32      `json:"number,omitempty"`
	Winner    string     `json:"winner,omitempty"`
	Pool      int64      `json:"pool,omitempty"`
	Card      *BingoCard `json:"card,omitempty"`
}

//Account 资产账户
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

//GetBalance nil 安全取余额
func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

//ReceiptAccountTransfer 资产转移回执
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

//RegistryStats 累计创建和取消计数
type RegistryStats struct {
	CreatedCount   int64 `json:"createdCount"`
	CancelledCount int64 `json:"cancelledCount"`
}

//ReqBingoInfo 按名字查询
type ReqBingoInfo struct {
	Name string `json:"name"`
}

//ReqBingoList 按状态查询
type ReqBingoList struct {
	Status    int32 `json:"status"`
	Count     int32 `json:"count"`
	Direction int32 `json:"direction"`
}

//ReplyBingoList ...
type ReplyBingoList struct {
	Games []*BingoGame `json:"games"`
}

//ReqBingoEvents fromSeq 为 0 表示从最新一条开始
type ReqBingoEvents struct {
	FromSeq int64 `json:"fromSeq"`
	Count   int32 `json:"count"`
}

//ReplyBingoEvents ...
type ReplyBingoEvents struct {
	Events []*BingoEvent `json:"events"`
}

//ReqBalance 按地址查询资产
type ReqBalance struct {
	Addr string `json:"addr"`
}

//Encode 对象编码
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Decode 对象解码
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

//CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(err.Error())}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}
