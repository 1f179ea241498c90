// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfgString = `
Title="bingo"

[log]
loglevel = "debug"
logConsoleLevel = "info"
logFile = "logs/bingo.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true

[store]
driver = "leveldb"
dbPath = "datadir"
dbCache = 64

[bingo]
operator = "1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S"

[[bingo.genesis]]
addr = "1Q8hGLfoGe63efeWa8fJ4Pnukhkngt6poK"
amount = 10000000000

[metrics]
enableMetrics = true
dataEmitMode = "log"
duration = 10
`

func TestInitCfgString(t *testing.T) {
	cfg := InitCfgString(testCfgString)
	require.NotNil(t, cfg)
	assert.Equal(t, "bingo", cfg.Title)

	require.NotNil(t, cfg.Log)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, uint32(300), cfg.Log.MaxFileSize)
	assert.True(t, cfg.Log.Compress)

	require.NotNil(t, cfg.Store)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, int32(64), cfg.Store.DbCache)

	require.NotNil(t, cfg.Bingo)
	assert.Equal(t, BingoX, cfg.Bingo.ExecName)
	assert.Equal(t, "1Bsg9j6gW83sShoee1fZAt9TkUjcrCgA9S", cfg.Bingo.Operator)
	require.Len(t, cfg.Bingo.Genesis, 1)
	assert.Equal(t, int64(10000000000), cfg.Bingo.Genesis[0].Amount)

	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, int64(10), cfg.Metrics.Duration)
}

func TestInitCfgStringDefault(t *testing.T) {
	cfg := InitCfgString("")
	require.NotNil(t, cfg)
	assert.Equal(t, BingoX, cfg.Title)
	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, BingoX, cfg.Bingo.ExecName)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "datadir", cfg.Store.DbPath)
	assert.Equal(t, int32(64), cfg.Store.DbCache)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "log", cfg.Metrics.DataEmitMode)
	assert.Equal(t, int64(10), cfg.Metrics.Duration)
	assert.Equal(t, "", cfg.Bingo.Operator)
}

func TestInitCfgStringBad(t *testing.T) {
	assert.Panics(t, func() { InitCfgString("not [ valid = toml") })
}
