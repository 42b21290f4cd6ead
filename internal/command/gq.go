// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/gridutil/gridutil/internal/attrs"
	"github.com/gridutil/gridutil/internal/config"
	"github.com/gridutil/gridutil/internal/meta"
	"github.com/gridutil/gridutil/internal/output"
)

// gqCommandAction is the action handler for the "gq" subcommand. It reads a
// JSON document of rows from a file or stdin and emits the filtered, sorted
// and shaped result per common flags.
func gqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "gq") {
		return nil
	}

	config.Config.Namespace = "gq"

	// Get the positional argument (the input file or default to stdin).
	var docInput string
	if len(m.Args) > 2 && m.Args[2] != "" && m.Args[2][0] != '-' {
		docInput = m.Args[2]
	} else {
		docInput = "-"
	}

	input, err := OpenInput(docInput)
	if err != nil {
		return err
	}
	if input != os.Stdin {
		defer input.Close()
	}

	doc, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if !gjson.ValidBytes(doc) {
		return fmt.Errorf("input is not valid JSON")
	}

	parent := cmd.String("parent")

	attrList := BuildAttrs(cmd)

	// Without --attrs we shape the output from the document itself: every key
	// of the first row becomes a column, in document order.
	if len(attrList) == 0 {
		attrList = deriveAttrs(gjson.ParseBytes(doc), parent)
	}
	log.Debugf("attrs: %v", attrList)

	var raw bytes.Buffer
	raw.Write(doc)

	output.SliceDiceSpit(raw, attrList, cmd, parent, os.Stdout, nil)

	return nil
}

// deriveAttrs builds the attribute list from the first row of the dataset.
// Key order follows the document.
func deriveAttrs(doc gjson.Result, parent string) (al attrs.AttrList) {
	rows := doc
	if parent != "" {
		rows = doc.Get(parent)
	}

	arr := rows.Array()
	if len(arr) == 0 {
		return
	}

	arr[0].ForEach(func(key, _ gjson.Result) bool {
		//nolint:errcheck
		al.Set(key.String())
		return true
	})

	return
}

// gqCommandBuilder constructs the cli.Command for "gq", wiring metadata,
// flags, and action/validator handlers.
func gqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "gq",
		Usage:     "grid query",
		UsageText: "gridutil gq [file] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewParentFlag("gq", meta.Config.Source),
			tldrFlag,
		}, NewGlobalFlags("gq")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: gqCommandAction,
	}
}
