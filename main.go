// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/bingo/commands"
	"github.com/33cn/bingo/common/limits"
	"github.com/spf13/cobra"
)

func addCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		commands.GameCmd(),
		commands.AccountCmd(),
		commands.VersionCmd(),
	)
}

func main() {
	err := limits.SetLimits()
	if err != nil {
		panic(err)
	}
	rootCmd := &cobra.Command{
		Use:   "bingo",
		Short: "bingo game service console",
	}
	rootCmd.PersistentFlags().String("conf", "bingo.toml", "configuration file")
	addCommands(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
