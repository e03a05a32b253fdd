// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package network

import (
	"os"

	"github.com/interchain-tools/its-cli/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Network]", func() {
	ginkgo.It("lists the built in networks", func() {
		home, err := os.MkdirTemp("", "its-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
		defer os.RemoveAll(home)

		out, code := commands.NetworkList(home)
		gomega.Expect(code).Should(gomega.Equal(0), out)
		for _, name := range []string{"dev", "sepolia", "blastTest", "fantom", "mainnet"} {
			gomega.Expect(out).Should(gomega.ContainSubstring(name))
		}
		gomega.Expect(out).Should(gomega.ContainSubstring("ethereum-sepolia"))
		gomega.Expect(out).Should(gomega.ContainSubstring("FTM"))
	})
})
