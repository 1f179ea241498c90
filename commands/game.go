// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands bingo 控制台命令
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/33cn/bingo/common/address"
	dbm "github.com/33cn/bingo/common/db"
	clog "github.com/33cn/bingo/common/log"
	"github.com/33cn/bingo/executor"
	"github.com/33cn/bingo/metrics"
	"github.com/33cn/bingo/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

//GameCmd bingo 游戏命令
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "bingo game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GameCreateCmd(),
		GameJoinCmd(),
		GameDrawCmd(),
		GameDeclareCmd(),
		GameCancelCmd(),
		GameShowCmd(),
		GameListCmd(),
		GameStatsCmd(),
		GameEventsCmd(),
	)

	return cmd
}

//newService 按配置构建游戏服务，控制台每条命令独立打开存储
func newService(cmd *cobra.Command) (*executor.Bingo, error) {
	path, _ := cmd.Flags().GetString("conf")
	cfg := types.InitCfg(path)
	clog.SetFileLog(cfg.Log)
	store := dbm.NewDB("bingo", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	service, err := executor.New(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	metrics.StartMetrics(cfg)
	return service, nil
}

//parseCoinAmount 把币为单位的字符串换算成最小单位
func parseCoinAmount(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(err, "parse amount %s", amount)
	}
	return d.Mul(decimal.NewFromInt(types.Coin)).IntPart(), nil
}

//parseCard 卡片参数是 json 的列数组，5 列每列 5 个数，自由格填 0
func parseCard(raw string) (*types.BingoCard, error) {
	var columns [][]int32
	if err := json.Unmarshal([]byte(raw), &columns); err != nil {
		return nil, errors.Wrap(err, "parse card")
	}
	return &types.BingoCard{Columns: columns}, nil
}

func parseStatus(status string) (int32, error) {
	switch strings.ToLower(status) {
	case "pending":
		return types.BingoStatusPending, nil
	case "active":
		return types.BingoStatusActive, nil
	case "finished":
		return types.BingoStatusFinished, nil
	case "cancelled":
		return types.BingoStatusCancelled, nil
	}
	return 0, errors.Errorf("unknown status %s", status)
}

func output(data interface{}) {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(raw))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
}

//GameCreateCmd 创建游戏
func GameCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new bingo game",
		Run:   gameCreate,
	}
	addGameCreateFlags(cmd)
	return cmd
}

func addGameCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().StringP("fee", "f", "", "entry fee in coins")
	cmd.MarkFlagRequired("fee")

	cmd.Flags().Int64P("start", "s", 0, "start time, unix seconds")
	cmd.MarkFlagRequired("start")

	cmd.Flags().StringP("addr", "a", "", "operator address")
	cmd.MarkFlagRequired("addr")
}

func gameCreate(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	feeStr, _ := cmd.Flags().GetString("fee")
	start, _ := cmd.Flags().GetInt64("start")
	addr, _ := cmd.Flags().GetString("addr")

	fee, err := parseCoinAmount(feeStr)
	if err != nil {
		fail(err)
		return
	}
	if err := address.CheckAddress(addr); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	_, err = service.Exec_Create(&types.BingoCreate{
		Name:      name,
		EntryFee:  fee,
		StartTime: start,
	}, addr)
	if err != nil {
		fail(err)
		return
	}
	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameJoinCmd 入局下注
func GameJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a game with a card and pay the entry fee",
		Run:   gameJoin,
	}
	addGameJoinFlags(cmd)
	return cmd
}

func addGameJoinFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().StringP("card", "d", "", `card columns as json, e.g. "[[1,2,3,4,5],[16,...],...]"`)
	cmd.MarkFlagRequired("card")

	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
}

func gameJoin(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	cardStr, _ := cmd.Flags().GetString("card")
	addr, _ := cmd.Flags().GetString("addr")

	card, err := parseCard(cardStr)
	if err != nil {
		fail(err)
		return
	}
	if err := address.CheckAddress(addr); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	_, err = service.Exec_Join(&types.BingoJoin{Name: name, Card: card}, addr)
	if err != nil {
		fail(err)
		return
	}
	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameDrawCmd 开号
func GameDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a number for a started game",
		Run:   gameDraw,
	}
	addGameDrawFlags(cmd)
	return cmd
}

func addGameDrawFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().Int32P("number", "m", 0, "number to draw, 1 to 75")
	cmd.MarkFlagRequired("number")

	cmd.Flags().StringP("addr", "a", "", "operator address")
	cmd.MarkFlagRequired("addr")
}

func gameDraw(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	number, _ := cmd.Flags().GetInt32("number")
	addr, _ := cmd.Flags().GetString("addr")

	if err := address.CheckAddress(addr); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	_, err = service.Exec_Draw(&types.BingoDraw{Name: name, Number: number}, addr)
	if err != nil {
		fail(err)
		return
	}
	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameDeclareCmd 宣告胜利
func GameDeclareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare a win and take the pool",
		Run:   gameDeclare,
	}
	addGameDeclareFlags(cmd)
	return cmd
}

func addGameDeclareFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
}

func gameDeclare(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	addr, _ := cmd.Flags().GetString("addr")

	if err := address.CheckAddress(addr); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	_, err = service.Exec_DeclareWin(&types.BingoDeclare{Name: name}, addr)
	if err != nil {
		fail(err)
		return
	}
	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameCancelCmd 取消游戏并退款
func GameCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a game and refund all players",
		Run:   gameCancel,
	}
	addGameCancelFlags(cmd)
	return cmd
}

func addGameCancelFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().StringP("addr", "a", "", "operator address")
	cmd.MarkFlagRequired("addr")
}

func gameCancel(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	addr, _ := cmd.Flags().GetString("addr")

	if err := address.CheckAddress(addr); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	_, err = service.Exec_Cancel(&types.BingoCancel{Name: name}, addr)
	if err != nil {
		fail(err)
		return
	}
	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameShowCmd 查询单局
func GameShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one game by name",
		Run:   gameShow,
	}
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func gameShow(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	game, err := service.Query_GetGameInfo(&types.ReqBingoInfo{Name: name})
	if err != nil {
		fail(err)
		return
	}
	output(game)
}

//GameListCmd 按状态列出游戏
func GameListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status",
		Run:   gameList,
	}
	addGameListFlags(cmd)
	return cmd
}

func addGameListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("status", "s", "", "pending | active | finished | cancelled")
	cmd.MarkFlagRequired("status")

	cmd.Flags().Int32P("count", "c", 0, "max records, 0 for default")
	cmd.Flags().Int32P("direction", "d", 0, "0: descending, 1: ascending")
}

func gameList(cmd *cobra.Command, args []string) {
	statusStr, _ := cmd.Flags().GetString("status")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	status, err := parseStatus(statusStr)
	if err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	reply, err := service.Query_ListGameByStatus(&types.ReqBingoList{
		Status:    status,
		Count:     count,
		Direction: direction,
	})
	if err != nil {
		fail(err)
		return
	}
	output(reply)
}

//GameStatsCmd 全局统计
func GameStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime created and cancelled counters",
		Run:   gameStats,
	}
}

func gameStats(cmd *cobra.Command, args []string) {
	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	stats, err := service.Query_GetRegistryStats()
	if err != nil {
		fail(err)
		return
	}
	output(stats)
}

//GameEventsCmd 事件日志
func GameEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List recent events, newest first",
		Run:   gameEvents,
	}
	addGameEventsFlags(cmd)
	return cmd
}

func addGameEventsFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("from", "f", 0, "list events before this seq, 0 for latest")
	cmd.Flags().Int32P("count", "c", 0, "max records, 0 for default")
}

func gameEvents(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetInt64("from")
	count, _ := cmd.Flags().GetInt32("count")

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	reply, err := service.Query_ListEvents(&types.ReqBingoEvents{FromSeq: from, Count: count})
	if err != nil {
		fail(err)
		return
	}
	output(reply)
}
