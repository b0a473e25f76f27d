// adfgvx TUI - a terminal workbench for ADFGVX batch encryption.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adfgvx-tui/internal/cli"
	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/ui/workbench"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		os.Exit(runTUI())
	case cli.CmdEncrypt:
		os.Exit(cli.HandleEncrypt(args))
	case cli.CmdDecrypt:
		os.Exit(cli.HandleDecrypt(args))
	case cli.CmdKey:
		os.Exit(cli.HandleKey(args))
	case cli.CmdStatus:
		os.Exit(cli.HandleStatus(args))
	case cli.CmdConfig:
		os.Exit(cli.HandleConfig(args))
	case cli.CmdHistory:
		os.Exit(cli.HandleHistory(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		os.Exit(runTUI())
	}
}

// runTUI starts the interactive workbench.
func runTUI() int {
	if err := cli.RequiresTTY("interactive mode"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Use 'adfgvx encrypt' or 'adfgvx decrypt' for non-interactive runs.")
		return 1
	}

	cfg := config.Global()
	model := workbench.NewModel(cfg, Version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if m, ok := final.(workbench.Model); ok {
		m.Close()
	}
	return 0
}
