// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The config command: show, get, set.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/adfgvx-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) int {
	parser := NewArgParser(args.Raw)

	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "get":
		return configGet(parser.Positional(1))
	case "set":
		return configSet(parser.Positional(1), parser.Positional(2))
	default:
		return Fail(fmt.Errorf("unknown config subcommand %q (want show, get, or set)", args.Subcommand))
	}
}

func configShow() int {
	cfg := config.Global()

	fmt.Println(TitleStyle.Render("adfgvx configuration"))
	for _, key := range config.GetAllKeys() {
		val, err := cfg.Get(key)
		if err != nil {
			continue
		}
		rendered := fmt.Sprint(val)
		if key == "key" && rendered != "" {
			// SECURITY: never echo the stored key.
			rendered = "[set]"
		}
		if rendered == "" {
			rendered = DimStyle.Render("(unset)")
		} else {
			rendered = ValueStyle.Render(rendered)
		}
		fmt.Printf("%s%s\n", RenderLabel(key+":"), rendered)
	}
	return 0
}

func configGet(key string) int {
	if key == "" {
		return Fail(errors.New("usage: adfgvx config get <key>"))
	}
	val, err := config.Global().Get(key)
	if err != nil {
		return Fail(err)
	}
	fmt.Println(val)
	return 0
}

func configSet(key, value string) int {
	if key == "" || value == "" {
		return Fail(errors.New("usage: adfgvx config set <key> <value>"))
	}

	cfg := config.Global().Clone()
	if err := cfg.Set(key, value); err != nil {
		return Fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return Fail(err)
	}
	if err := config.Save(cfg); err != nil {
		return Fail(err)
	}
	config.SetGlobal(cfg)

	fmt.Printf("%s %s updated\n", RenderStatus("ok"), key)
	return 0
}
