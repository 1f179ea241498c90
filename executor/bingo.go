// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor bingo 游戏服务的核心实现，负责操作的原子执行、索引维护和查询
package executor

import (
	"sync"
	"time"

	"github.com/33cn/bingo/account"
	dbm "github.com/33cn/bingo/common/db"
	"github.com/33cn/bingo/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var blog = log.New("module", "execs.bingo")

// Bingo 游戏服务
type Bingo struct {
	store    dbm.DB
	cfg      *types.Config
	execName string
	operator string
	now      func() int64

	//同名游戏上的操作串行，不同游戏并行
	lockmu sync.Mutex
	locks  map[string]*sync.Mutex
	//入金、派奖、退款共用同一个托管账户，资金操作之间互斥
	fundsLock sync.Mutex
	//提交互斥，保护事件序号、统计和批量落盘
	commitLock sync.Mutex

	eventSeq int64

	created   gometrics.Counter
	joined    gometrics.Counter
	drawn     gometrics.Counter
	won       gometrics.Counter
	cancelled gometrics.Counter
}

// New 构建游戏服务，完成创世资产初始化并恢复事件序号
func New(cfg *types.Config, store dbm.DB) (*Bingo, error) {
	b := &Bingo{
		store:    store,
		cfg:      cfg,
		execName: cfg.Bingo.ExecName,
		operator: cfg.Bingo.Operator,
		now:      func() int64 { return time.Now().Unix() },
		locks:    make(map[string]*sync.Mutex),
	}
	if b.execName == "" {
		b.execName = types.BingoX
	}
	b.created = gometrics.GetOrRegisterCounter("bingo.created", nil)
	b.joined = gometrics.GetOrRegisterCounter("bingo.joined", nil)
	b.drawn = gometrics.GetOrRegisterCounter("bingo.drawn", nil)
	b.won = gometrics.GetOrRegisterCounter("bingo.won", nil)
	b.cancelled = gometrics.GetOrRegisterCounter("bingo.cancelled", nil)

	if err := b.genesisInit(); err != nil {
		return nil, err
	}
	b.eventSeq = b.lastEventSeq()
	blog.Info("bingo service ready", "execName", b.execName, "operator", b.operator, "eventSeq", b.eventSeq)
	return b, nil
}

// Close 关闭底层存储
func (b *Bingo) Close() {
	b.store.Close()
	blog.Info("bingo service closed")
}

// SetClock 注入时钟，测试用
func (b *Bingo) SetClock(now func() int64) {
	b.now = now
}

//genesisInit 首次启动按配置给创世地址铸入资产，只执行一次
func (b *Bingo) genesisInit() error {
	if len(b.cfg.Bingo.Genesis) == 0 {
		return nil
	}
	if _, err := b.store.Get(GenesisKey()); err == nil {
		return nil
	}
	sdb := NewStateDB(b.store)
	coins := account.NewCoinsAccount()
	coins.SetDB(sdb)
	batch := b.store.NewBatch(true)
	for _, genesis := range b.cfg.Bingo.Genesis {
		receipt, err := coins.GenesisInit(genesis.Addr, genesis.Amount)
		if err != nil {
			blog.Error("genesisInit", "addr", genesis.Addr, "amount", genesis.Amount, "err", err)
			return err
		}
		for _, item := range receipt.KV {
			batch.Set(item.Key, item.Value)
		}
	}
	batch.Set(GenesisKey(), []byte("done"))
	if err := batch.Write(); err != nil {
		return err
	}
	blog.Info("genesis init", "accounts", len(b.cfg.Bingo.Genesis))
	return nil
}

//lastEventSeq 从事件存储里恢复最近一次的事件序号
func (b *Bingo) lastEventSeq() int64 {
	values, err := b.store.List(calcBingoEventPrefix(), nil, 1, ListDESC)
	if err != nil || len(values) == 0 {
		return 0
	}
	var event types.BingoEvent
	if err := types.Decode(values[0], &event); err != nil {
		blog.Error("lastEventSeq", "err", err)
		return 0
	}
	return event.Seq
}

func (b *Bingo) gameLock(name string) *sync.Mutex {
	b.lockmu.Lock()
	defer b.lockmu.Unlock()
	lock, ok := b.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		b.locks[name] = lock
	}
	return lock
}

//execute 单次游戏操作的原子执行：校验和变更跑在事务缓存上，
//失败回滚不落盘，成功后状态、索引、事件一个批次写入
func (b *Bingo) execute(name, from string, funds bool, op func(*Action) (*types.Receipt, error)) (*types.Receipt, error) {
	lock := b.gameLock(name)
	lock.Lock()
	defer lock.Unlock()
	if funds {
		b.fundsLock.Lock()
		defer b.fundsLock.Unlock()
	}

	sdb := NewStateDB(b.store)
	sdb.Begin()
	action := NewAction(b, sdb, from)
	receipt, err := op(action)
	if err != nil {
		sdb.Rollback()
		return nil, err
	}
	sdb.Commit()
	if err := b.commit(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

//executeAccount 资产操作同样走资金互斥和统一提交
func (b *Bingo) executeAccount(op func(*account.DB) (*types.Receipt, error)) (*types.Receipt, error) {
	b.fundsLock.Lock()
	defer b.fundsLock.Unlock()

	sdb := NewStateDB(b.store)
	coins := account.NewCoinsAccount()
	coins.SetDB(sdb)
	receipt, err := op(coins)
	if err != nil {
		return nil, err
	}
	if err := b.commit(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

//commit 把一次成功操作的状态变更和本地索引落盘，value 为 nil 的键按删除处理
func (b *Bingo) commit(receipt *types.Receipt) error {
	b.commitLock.Lock()
	defer b.commitLock.Unlock()

	localKV, err := b.execLocal(receipt)
	if err != nil {
		return err
	}
	batch := b.store.NewBatch(true)
	for _, item := range receipt.KV {
		if item.Value == nil {
			batch.Delete(item.Key)
		} else {
			batch.Set(item.Key, item.Value)
		}
	}
	for _, item := range localKV {
		if item.Value == nil {
			batch.Delete(item.Key)
		} else {
			batch.Set(item.Key, item.Value)
		}
	}
	return batch.Write()
}

// Deposit 给地址充值，控制台专用入口
func (b *Bingo) Deposit(addr string, amount int64) (*types.Receipt, error) {
	return b.executeAccount(func(coins *account.DB) (*types.Receipt, error) {
		return coins.Deposit(addr, amount)
	})
}

// Withdraw 从地址提现
func (b *Bingo) Withdraw(addr string, amount int64) (*types.Receipt, error) {
	return b.executeAccount(func(coins *account.DB) (*types.Receipt, error) {
		return coins.Withdraw(addr, amount)
	})
}

// Transfer 普通账户间转账
func (b *Bingo) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	return b.executeAccount(func(coins *account.DB) (*types.Receipt, error) {
		return coins.Transfer(from, to, amount)
	})
}
