// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package run

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/interchain-tools/its-cli/tests/e2e/commands"
	"github.com/interchain-tools/its-cli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// hardhat account #0
const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var _ = ginkgo.Describe("[Run]", func() {
	var home string

	ginkgo.BeforeEach(func() {
		var err error
		home, err = os.MkdirTemp("", "its-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterEach(func() {
		_ = os.RemoveAll(home)
	})

	ginkgo.It("fails on an unknown function without dialing", func() {
		// nothing listens there, a dial would fail with a connection error
		out, code := commands.RunFunction(home, "doesNotExist", utils.Env{
			"PR_KEY":  testKey,
			"RPC_URL": "http://127.0.0.1:1",
		})
		gomega.Expect(code).Should(gomega.Equal(1))
		gomega.Expect(out).Should(gomega.ContainSubstring(`unknown function: "doesNotExist"`))
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("connection refused"))
	})

	ginkgo.It("fails when no function is given", func() {
		out, code := commands.RunFunction(home, "", nil)
		gomega.Expect(code).Should(gomega.Equal(1))
		gomega.Expect(out).Should(gomega.ContainSubstring("unknown function"))
	})

	ginkgo.It("requires a key for signing functions", func() {
		out, code := commands.RunFunction(home, "mintTokens", nil)
		gomega.Expect(code).Should(gomega.Equal(1))
		gomega.Expect(out).Should(gomega.ContainSubstring("private key"))
	})

	ginkgo.It("estimates gas against the gas fee service", func() {
		var body string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bs, _ := io.ReadAll(r.Body)
			body = string(bs)
			_, _ = w.Write([]byte(`"3000000000000000"`))
		}))
		defer server.Close()

		out, code := commands.RunFunction(home, "gasEstimate", utils.Env{
			"AXELAR_API_URL": server.URL,
		})
		gomega.Expect(code).Should(gomega.Equal(0), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("3000000000000000 wei"))
		gomega.Expect(strings.Contains(body, `"destinationChain":"blast-sepolia"`)).Should(gomega.BeTrue(), body)
		gomega.Expect(strings.Contains(body, `"gasLimit":700000`)).Should(gomega.BeTrue(), body)
	})

	ginkgo.It("reports gas fee service failures", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		out, code := commands.RunFunction(home, "gasEstimate", utils.Env{
			"AXELAR_API_URL": server.URL,
		})
		gomega.Expect(code).Should(gomega.Equal(1))
		gomega.Expect(out).Should(gomega.ContainSubstring("failure estimating gas fee"))
	})
})
