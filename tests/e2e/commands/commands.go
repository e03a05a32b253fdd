// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"github.com/interchain-tools/its-cli/tests/e2e/utils"
	"github.com/onsi/gomega"
)

const (
	RunCmd         = "run"
	AddressBookCmd = "addressbook"
	NetworkCmd     = "network"
)

// RunFunction runs `its run` with FUNCTION_NAME set to function
func RunFunction(home string, function string, env utils.Env) (string, int) {
	if env == nil {
		env = utils.Env{}
	}
	env["FUNCTION_NAME"] = function
	out, code, err := utils.RunCLI(home, env, RunCmd)
	gomega.Expect(err).Should(gomega.BeNil())
	return out, code
}

func AddressBookSet(home string, book string, key string, address string) (string, int) {
	out, code, err := utils.RunCLI(home, nil, AddressBookCmd, "set", key, address, "--address-book", book)
	gomega.Expect(err).Should(gomega.BeNil())
	return out, code
}

func AddressBookGet(home string, book string, key string) (string, int) {
	out, code, err := utils.RunCLI(home, nil, AddressBookCmd, "get", key, "--address-book", book)
	gomega.Expect(err).Should(gomega.BeNil())
	return out, code
}

func AddressBookList(home string, book string) (string, int) {
	out, code, err := utils.RunCLI(home, nil, AddressBookCmd, "list", "--address-book", book)
	gomega.Expect(err).Should(gomega.BeNil())
	return out, code
}

func NetworkList(home string) (string, int) {
	out, code, err := utils.RunCLI(home, nil, NetworkCmd, "list")
	gomega.Expect(err).Should(gomega.BeNil())
	return out, code
}
