// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
)

var ErrCancelled = errors.New("operation cancelled by user")

// ConfirmTransaction asks before anything is signed. skip bypasses the
// question, as --skip-confirm does.
func ConfirmTransaction(prompter Prompter, skip bool, goal string) error {
	if skip {
		return nil
	}
	yes, err := prompter.CaptureYesNo(fmt.Sprintf("Do you want to %s?", goal))
	if err != nil {
		return err
	}
	if !yes {
		return ErrCancelled
	}
	return nil
}

// PromptPrivateKey asks for the signer key when none was configured
func PromptPrivateKey(prompter Prompter, goal string) (string, error) {
	return prompter.CapturePrivateKey(fmt.Sprintf("Private key to %s", goal))
}
