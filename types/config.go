// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

//Config 服务配置
type Config struct {
	Title   string
	Version string
	Log     *Log
	Store   *Store
	Bingo   *Bingo
	Metrics *Metrics
}

//Log 日志配置
type Log struct {
	Loglevel        string
	LogConsoleLevel string
	LogFile         string
	MaxFileSize     uint32
	MaxBackups      uint32
	MaxAge          uint32
	LocalTime       bool
	Compress        bool
	CallerFile      bool
	CallerFunction  bool
}

//Store 存储配置
type Store struct {
	Driver  string
	DbPath  string
	DbCache int32
}

//Bingo 游戏配置
type Bingo struct {
	ExecName string
	Operator string
	Genesis  []*GenesisAccount
}

//GenesisAccount 初始资产
type GenesisAccount struct {
	Addr   string
	Amount int64
}

//Metrics 指标配置
type Metrics struct {
	EnableMetrics bool
	DataEmitMode  string
	Duration      int64
}

//InitCfg 初始化配置
func InitCfg(path string) *Config {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return InitCfgString(string(data))
}

//InitCfgString 初始化配置
func InitCfgString(cfgstring string) *Config {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		panic(err)
	}
	cfg.setDefault()
	return &cfg
}

func (cfg *Config) setDefault() {
	if cfg.Title == "" {
		cfg.Title = BingoX
	}
	if cfg.Version == "" {
		cfg.Version = Version
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Store.DbCache <= 0 {
		cfg.Store.DbCache = 64
	}
	if cfg.Bingo == nil {
		cfg.Bingo = &Bingo{}
	}
	if cfg.Bingo.ExecName == "" {
		cfg.Bingo.ExecName = BingoX
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.DataEmitMode == "" {
		cfg.Metrics.DataEmitMode = "log"
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 10
	}
}
