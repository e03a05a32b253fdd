// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbook

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/interchain-tools/its-cli/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const (
	tokenKey     = "sepolia.itsToken"
	tokenAddress = "0x4D5361D08321d51e3821D7BCe23d711b594767e7"
)

var _ = ginkgo.Describe("[Address book]", func() {
	var (
		home string
		book string
	)

	ginkgo.BeforeEach(func() {
		var err error
		home, err = os.MkdirTemp("", "its-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
		book = filepath.Join(home, "deployments.json")
	})

	ginkgo.AfterEach(func() {
		_ = os.RemoveAll(home)
	})

	ginkgo.It("records and reads back addresses", func() {
		out, code := commands.AddressBookSet(home, book, tokenKey, tokenAddress)
		gomega.Expect(code).Should(gomega.Equal(0), out)

		out, code = commands.AddressBookGet(home, book, tokenKey)
		gomega.Expect(code).Should(gomega.Equal(0), out)
		gomega.Expect(out).Should(gomega.ContainSubstring(tokenAddress))

		out, code = commands.AddressBookList(home, book)
		gomega.Expect(code).Should(gomega.Equal(0), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("itsToken"))
	})

	ginkgo.It("keeps other entries and writes the same bytes twice", func() {
		_, code := commands.AddressBookSet(home, book, "fantom.itsToken", "0x0000000000000000000000000000000000000001")
		gomega.Expect(code).Should(gomega.Equal(0))
		_, code = commands.AddressBookSet(home, book, tokenKey, tokenAddress)
		gomega.Expect(code).Should(gomega.Equal(0))
		first, err := os.ReadFile(book)
		gomega.Expect(err).Should(gomega.BeNil())

		_, code = commands.AddressBookSet(home, book, tokenKey, tokenAddress)
		gomega.Expect(code).Should(gomega.Equal(0))
		second, err := os.ReadFile(book)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(second).Should(gomega.Equal(first))

		entries := map[string]map[string]string{}
		gomega.Expect(json.Unmarshal(second, &entries)).Should(gomega.Succeed())
		gomega.Expect(entries).Should(gomega.HaveLen(2))
		gomega.Expect(entries["sepolia"]["itsToken"]).Should(gomega.Equal(tokenAddress))
	})

	ginkgo.It("fails on a missing key", func() {
		out, code := commands.AddressBookGet(home, book, "sepolia.missing")
		gomega.Expect(code).Should(gomega.Equal(1))
		gomega.Expect(out).Should(gomega.ContainSubstring("sepolia.missing"))
	})

	ginkgo.It("rejects malformed addresses", func() {
		_, code := commands.AddressBookSet(home, book, tokenKey, "0x1234")
		gomega.Expect(code).Should(gomega.Equal(1))
		_, err := os.Stat(book)
		gomega.Expect(os.IsNotExist(err)).Should(gomega.BeTrue())
	})
})
