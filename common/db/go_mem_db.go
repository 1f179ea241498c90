// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存数据库
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件，后续考虑增加缓存数目
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = cloneByte(value)
	return nil
}

//SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

//DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//Print 打印
func (db *GoMemDB) Print() {
	db.lock.RLock()
	defer db.lock.RUnlock()
	for key, value := range db.db {
		mlog.Info("Print", "key", key, "value", string(value))
	}
}

//Stats ...
func (db *GoMemDB) Stats() map[string]string {
	return nil
}

//List 列表
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(db).List(prefix, key, count, direction)
	return values, nil
}

//PrefixCount 前缀数量
func (db *GoMemDB) PrefixCount(prefix []byte) int64 {
	return NewListHelper(db).PrefixCount(prefix)
}

//Iterator 迭代器
func (db *GoMemDB) Iterator(prefix []byte, reserve bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return &goMemDBIt{index: -1, keys: keys, goMemDb: db, reserve: reserve, prefix: prefix}
}

type goMemDBIt struct {
	index   int      // 记录当前索引
	keys    []string // 记录所有keys值
	goMemDb *GoMemDB
	reserve bool
	prefix  []byte
}

//Seek 指向当前的index值
func (dbit *goMemDBIt) Seek(key []byte) bool {
	for i, k := range dbit.keys {
		if strings.Compare(k, string(key)) == 0 {
			dbit.index = i
			return true
		}
	}
	return false
}

func (dbit *goMemDBIt) Close() {
	dbit.keys = nil
}

func (dbit *goMemDBIt) Next() bool {
	if dbit.reserve { // 反向
		dbit.index--
	} else { // 正向
		dbit.index++
	}
	return dbit.Valid()
}

func (dbit *goMemDBIt) Rewind() bool {
	if len(dbit.keys) == 0 {
		return false
	}
	if dbit.reserve { // 反向,将当前key值指向最后一个
		dbit.index = len(dbit.keys) - 1
	} else { // 正向,将当前key值指向第一个
		dbit.index = 0
	}
	return true
}

func (dbit *goMemDBIt) Key() []byte {
	return []byte(dbit.keys[dbit.index])
}

func (dbit *goMemDBIt) Value() []byte {
	v, err := dbit.goMemDb.Get([]byte(dbit.keys[dbit.index]))
	if err != nil {
		return nil
	}
	return v
}

func (dbit *goMemDBIt) ValueCopy() []byte {
	return cloneByte(dbit.Value())
}

func (dbit *goMemDBIt) Valid() bool {
	if dbit.goMemDb == nil || len(dbit.keys) == 0 {
		return false
	}
	return dbit.index >= 0 && dbit.index < len(dbit.keys)
}

func (dbit *goMemDBIt) Error() error {
	return nil
}

type kv struct{ k, v []byte }
type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size += len(key)
}

// Write 一次性写入，注意不能在持锁期间再调用 db 的 Set/Delete
func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	return nil
}

func (b *memBatch) ValueLen() int {
	return len(b.writes)
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
