// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/marclove/tram/internal/config"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func LogLevelValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := config.ParseLogLevel(s); err != nil {
		return fmt.Errorf("must be one of [debug info warn error]")
	}
	return nil
}

func FormatValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := config.ParseOutputFormat(s); err != nil {
		return fmt.Errorf("must be one of [json yaml table]")
	}
	return nil
}
