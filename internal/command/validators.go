// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// outputFormats are the renderings SliceDiceSpit knows how to produce. The
// completion scripts offer the same set.
var outputFormats = []string{"text", "json", "raw", "yaml"}

type FlagValidatorType func(any) error

// FlagValidators runs value through each validator, stopping at the first
// failure.
func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks cross-flag constraints after parsing. Padding
// comes from the GRIDUTIL_PADDING env as well as the flag, so it is checked
// here rather than per-source.
func GlobalFlagsValidator(ctx context.Context, cmd *cli.Command) error {
	if pad := cmd.Int("padding"); pad < 0 {
		return fmt.Errorf("padding must be zero or positive, got %d", pad)
	}
	return nil
}

// OutputValidator rejects --output values outside the supported formats.
func OutputValidator(value any) error {
	for _, format := range outputFormats {
		if format == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", outputFormats)
}
