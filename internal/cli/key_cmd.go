// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// key_cmd.go - The key command: validation and schedule inspection.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/adfgvx-tui/internal/cipher"
)

// HandleKey handles the "key" command.
//
//	adfgvx key check <KEY>   Validate a key and show its column order
func HandleKey(args Args) int {
	switch args.Subcommand {
	case "check":
		if args.Key == "" {
			return Fail(errors.New("usage: adfgvx key check <KEY>"))
		}
		return checkKey(args.Key)
	case "":
		return Fail(errors.New("usage: adfgvx key check <KEY>"))
	default:
		return Fail(fmt.Errorf("unknown key subcommand %q", args.Subcommand))
	}
}

func checkKey(key string) int {
	sched, err := cipher.NewSchedule(key)
	if err != nil {
		fmt.Printf("%s %s\n", RenderStatus("fail"), err)
		return 1
	}

	fmt.Printf("%s key %q is valid\n", RenderStatus("ok"), key)
	fmt.Printf("%s%s\n", RenderLabel("Columns:"), ValueStyle.Render(fmt.Sprint(sched.Columns())))
	fmt.Printf("%s%s\n", RenderLabel("Sorted key:"), ValueStyle.Render(sched.SortedKey))
	fmt.Printf("%s%s\n", RenderLabel("Read order:"), ValueStyle.Render(formatIndices(sched.SortedIndices)))
	return 0
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, v := range indices {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
