// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(dir).WithValueDir(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 同步set
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 同步删除
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Print 打印
func (db *GoBadgerDB) Print() {
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 10
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			blog.Info("Print", "key", string(it.Item().Key()))
		}
		return nil
	})
	if err != nil {
		blog.Error("Print", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	return nil
}

//List 列表
func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(db).List(prefix, key, count, direction)
	return values, nil
}

//PrefixCount 前缀数量
func (db *GoBadgerDB) PrefixCount(prefix []byte) int64 {
	return NewListHelper(db).PrefixCount(prefix)
}

//Iterator 迭代器，持有只读事务，用完必须 Close
func (db *GoBadgerDB) Iterator(prefix []byte, reserve bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reserve
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, prefix: prefix, reserve: reserve}
}

type goBadgerDBIt struct {
	it      *badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reserve bool
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if dbit.reserve {
		// 反向迭代时定位到前缀区间的末尾
		dbit.it.Seek(append(cloneByte(dbit.prefix), 0xff))
	} else {
		dbit.it.Seek(dbit.prefix)
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		blog.Error("Value", "error", err)
		return nil
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return nil
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
	mBatch.size += len(key) + len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
	mBatch.size += len(key)
}

//Write 单事务提交，保证批量写的原子性
func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			if kv.v == nil {
				if err := txn.Delete(kv.k); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(kv.k, kv.v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueLen() int {
	return len(mBatch.writes)
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
