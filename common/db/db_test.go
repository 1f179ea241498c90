package db

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDBGetSet(t *testing.T, db DB) {
	t.Log("test Set/Get")
	err := db.Set([]byte("key-10"), []byte("value-10"))
	require.NoError(t, err)
	v, err := db.Get([]byte("key-10"))
	require.NoError(t, err)
	require.Equal(t, string(v), "value-10")

	_, err = db.Get([]byte("key-not-exist"))
	require.Equal(t, err, ErrNotFoundInDb)

	err = db.SetSync([]byte("key-11"), []byte("value-11"))
	require.NoError(t, err)
	v, err = db.Get([]byte("key-11"))
	require.NoError(t, err)
	require.Equal(t, string(v), "value-11")

	t.Log("test Delete")
	err = db.Delete([]byte("key-10"))
	require.NoError(t, err)
	_, err = db.Get([]byte("key-10"))
	require.Equal(t, err, ErrNotFoundInDb)

	err = db.DeleteSync([]byte("key-11"))
	require.NoError(t, err)
	_, err = db.Get([]byte("key-11"))
	require.Equal(t, err, ErrNotFoundInDb)
}

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	t.Log("test Set")
	db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1"))
	db.Set([]byte("my_key/1"), []byte("my_key/1"))
	db.Set([]byte("my_key/2"), []byte("my_key/2"))
	db.Set([]byte("my_key/3"), []byte("my_key/3"))
	db.Set([]byte("my_key/4"), []byte("my_key/4"))
	db.Set([]byte("my"), []byte("my"))
	db.Set([]byte("my_"), []byte("my_"))
	db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1"))
	b, err := hex.DecodeString("ff")
	require.NoError(t, err)
	db.Set(b, []byte("0xff"))

	t.Log("test PrefixScan")
	it := NewListHelper(db)
	list := it.PrefixScan(nil)
	require.Equal(t, list, [][]byte{[]byte("aaaaaa/1"), []byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3"), []byte("my_key/4"), []byte("zzzzzz/1"), []byte("0xff")})

	t.Log("test IteratorScanFromFirst")
	list = it.IteratorScanFromFirst([]byte("my"), 2)
	require.Equal(t, list, [][]byte{[]byte("my"), []byte("my_")})

	t.Log("test IteratorScanFromLast")
	list = it.IteratorScanFromLast([]byte("my"), 100)
	require.Equal(t, list, [][]byte{[]byte("my_key/4"), []byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")})

	t.Log("test IteratorScan 1")
	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, 1)
	require.Equal(t, list, [][]byte{[]byte("my_key/4")})

	t.Log("test IteratorScan 0")
	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, 0)
	require.Equal(t, list, [][]byte{[]byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")})
}

func testDBBatch(t *testing.T, db DB) {
	t.Log("test Batch")
	err := db.Set([]byte("batch-0"), []byte("value-0"))
	require.NoError(t, err)

	batch := db.NewBatch(true)
	batch.Set([]byte("batch-1"), []byte("value-1"))
	batch.Set([]byte("batch-2"), []byte("value-2"))
	batch.Delete([]byte("batch-0"))
	require.Equal(t, 3, batch.ValueLen())
	err = batch.Write()
	require.NoError(t, err)

	v, err := db.Get([]byte("batch-1"))
	require.NoError(t, err)
	require.Equal(t, string(v), "value-1")
	v, err = db.Get([]byte("batch-2"))
	require.NoError(t, err)
	require.Equal(t, string(v), "value-2")
	_, err = db.Get([]byte("batch-0"))
	require.Equal(t, err, ErrNotFoundInDb)

	batch.Reset()
	require.Equal(t, 0, batch.ValueLen())
}

func testListDB(t *testing.T, db DB) {
	ldb := NewListHelper(db)
	db.Set([]byte("key1"), []byte("value1"))
	db.Set([]byte("key4"), []byte("value2"))
	db.Set([]byte("key7"), []byte("value3"))
	data := ldb.List([]byte("key"), []byte("key0"), 0, ListASC)
	require.Equal(t, 3, len(data))
	data = ldb.List([]byte("key"), []byte("key1"), 0, ListASC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key3"), 0, ListASC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key4"), 0, ListASC)
	require.Equal(t, 1, len(data))
	data = ldb.List([]byte("key"), []byte("key7"), 0, ListASC)
	require.Equal(t, 0, len(data))
	data = ldb.List([]byte("key"), []byte("key8"), 0, ListDESC)
	require.Equal(t, 3, len(data))
	data = ldb.List([]byte("key"), []byte("key7"), 0, ListDESC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key5"), 0, ListDESC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key4"), 0, ListDESC)
	require.Equal(t, 1, len(data))
	data = ldb.List([]byte("key"), []byte("key1"), 0, ListDESC)
	require.Equal(t, 0, len(data))
}

func testPrefixCount(t *testing.T, db DB) {
	db.Set([]byte("cnt-1"), []byte("v1"))
	db.Set([]byte("cnt-2"), []byte("v2"))
	db.Set([]byte("cnt-3"), []byte("v3"))
	require.Equal(t, int64(3), db.PrefixCount([]byte("cnt-")))
	require.Equal(t, int64(0), db.PrefixCount([]byte("nocnt-")))
}

func TestGoMemDB(t *testing.T) {
	memdb, err := NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	defer memdb.Close()
	testDBGetSet(t, memdb)
	testDBIterator(t, memdb)
	testDBBatch(t, memdb)
	testPrefixCount(t, memdb)
}

func TestGoLevelDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "goleveldb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	ldb, err := NewGoLevelDB("goleveldb", dir, 128)
	require.NoError(t, err)
	defer ldb.Close()
	testDBGetSet(t, ldb)
	testDBIterator(t, ldb)
	testDBBatch(t, ldb)
	testPrefixCount(t, ldb)
	testListDB(t, ldb)
}

func TestGoBadgerDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "gobadgerdb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	bdb, err := NewGoBadgerDB("gobadgerdb", dir, 128)
	require.NoError(t, err)
	defer bdb.Close()
	testDBGetSet(t, bdb)
	testDBIterator(t, bdb)
	testDBBatch(t, bdb)
	testPrefixCount(t, bdb)
	testListDB(t, bdb)
}

func TestNewDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "newdb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	db := NewDB("newdb", MemDBBackendStr, dir, 128)
	require.NotNil(t, db)
	db.Close()
	require.Panics(t, func() { NewDB("newdb", "nosuchbackend", dir, 128) })
}
