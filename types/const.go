// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//执行器名
const (
	BingoX = "bingo"
)

//Version 服务版本号
const Version = "1.0.0"

//ExecerBingo ...
var ExecerBingo = []byte(BingoX)

//bingo action ty
const (
	BingoActionCreate = iota + 1
	BingoActionJoin
	BingoActionDraw
	BingoActionDeclare
	BingoActionCancel
)

//游戏状态，Active 由开始时间和当前时间推导，不落盘
const (
	BingoStatusPending = int32(iota + 1)
	BingoStatusFinished
	BingoStatusCancelled

	BingoStatusActive = int32(100)
)

//log ty
const (
	TyLogErr      = 1
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
	TyLogWithdraw = 6

	TyLogBingoCreate  = 901
	TyLogBingoJoin    = 902
	TyLogBingoDraw    = 903
	TyLogBingoDeclare = 904
	TyLogBingoCancel  = 905
)

//执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// coin conversation
const (
	Coin             int64 = 1e8
	MaxCoin          int64 = 1e17
	GameNameLenLimit       = 128
)

//卡片尺寸和取值范围
const (
	CardSize       = 5
	CardColumnSpan = 15
	MaxDrawNumber  = 75
	FreeCellRow    = 2
	FreeCellCol    = 2
	FreeCellValue  = 0
)

//查询方法名
const (
	FuncNameQueryGameByName    = "GetGameInfo"
	FuncNameQueryGameByStatus  = "ListGameByStatus"
	FuncNameQueryRegistryStats = "GetRegistryStats"
	FuncNameQueryGameEvents    = "ListEvents"
	FuncNameQueryBalance       = "GetBalance"
)
