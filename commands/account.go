// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/bingo/common/address"
	"github.com/33cn/bingo/types"
	"github.com/spf13/cobra"
)

//AccountCmd 资产账户命令
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		AccountDepositCmd(),
		AccountWithdrawCmd(),
		AccountBalanceCmd(),
		AccountTransferCmd(),
	)

	return cmd
}

//AccountDepositCmd 充值
func AccountDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit coins to an address",
		Run:   accountDeposit,
	}
	addAccountAmountFlags(cmd)
	return cmd
}

//AccountWithdrawCmd 提现
func AccountWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from an address",
		Run:   accountWithdraw,
	}
	addAccountAmountFlags(cmd)
	return cmd
}

func addAccountAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
}

func accountDeposit(cmd *cobra.Command, args []string) {
	accountMove(cmd, true)
}

func accountWithdraw(cmd *cobra.Command, args []string) {
	accountMove(cmd, false)
}

func accountMove(cmd *cobra.Command, deposit bool) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")

	amount, err := parseCoinAmount(amountStr)
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

	if deposit {
		_, err = service.Deposit(addr, amount)
	} else {
		_, err = service.Withdraw(addr, amount)
	}
	if err != nil {
		fail(err)
		return
	}
	acc, err := service.Query_GetBalance(&types.ReqBalance{Addr: addr})
	if err != nil {
		fail(err)
		return
	}
	output(acc)
}

//AccountBalanceCmd 查询余额
func AccountBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an address",
		Run:   accountBalance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func accountBalance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	acc, err := service.Query_GetBalance(&types.ReqBalance{Addr: addr})
	if err != nil {
		fail(err)
		return
	}
	output(acc)
}

//AccountTransferCmd 账户间转账
func AccountTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins between addresses",
		Run:   accountTransfer,
	}
	addAccountTransferFlags(cmd)
	return cmd
}

func addAccountTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")

	cmd.Flags().StringP("to", "t", "", "recipient address")
	cmd.MarkFlagRequired("to")

	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
}

func accountTransfer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")

	amount, err := parseCoinAmount(amountStr)
	if err != nil {
		fail(err)
		return
	}
	if err := address.CheckAddress(from); err != nil {
		fail(err)
		return
	}
	if err := address.CheckAddress(to); err != nil {
		fail(err)
		return
	}

	service, err := newService(cmd)
	if err != nil {
		fail(err)
		return
	}
	defer service.Close()

	if _, err := service.Transfer(from, to, amount); err != nil {
		fail(err)
		return
	}
	acc, err := service.Query_GetBalance(&types.ReqBalance{Addr: from})
	if err != nil {
		fail(err)
		return
	}
	output(acc)
}
