// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package gas

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, response string, seen *map[string]interface{}) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if seen != nil {
			require.NoError(t, json.Unmarshal(body, seen))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewAxelarClientURL(t *testing.T) {
	require.Equal(t, constants.AxelarTestnetAPIURL, NewAxelarClient(EnvironmentTestnet, "", nil).URL)
	require.Equal(t, constants.AxelarMainnetAPIURL, NewAxelarClient(EnvironmentMainnet, "", nil).URL)
	require.Equal(t, "http://localhost:1234", NewAxelarClient(EnvironmentMainnet, "http://localhost:1234/", nil).URL)
}

func TestEstimateGasFeeRequestBody(t *testing.T) {
	require := require.New(t)
	var seen map[string]interface{}
	server := newTestServer(t, http.StatusOK, `"123456789"`, &seen)
	client := NewAxelarClient(EnvironmentTestnet, server.URL, nil)

	fee, err := client.EstimateGasFee(context.Background(), DefaultFeeRequest())
	require.NoError(err)
	require.Equal(big.NewInt(123456789), fee)

	require.Equal("estimateGasFee", seen["method"])
	require.Equal("ethereum-sepolia", seen["sourceChain"])
	require.Equal("blast-sepolia", seen["destinationChain"])
	require.Equal("ETH", seen["sourceTokenSymbol"])
	require.EqualValues(700000, seen["gasLimit"])
	require.Equal("1.1", seen["gasMultiplier"])
	require.NotContains(seen, "minGasPrice")
}

func TestEstimateGasFeeResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		expected int64
		err      string
	}{
		{name: "bare string", status: http.StatusOK, response: `"1000"`, expected: 1000},
		{name: "bare number", status: http.StatusOK, response: `2500`, expected: 2500},
		{name: "result field", status: http.StatusOK, response: `{"result":"42"}`, expected: 42},
		{
			name:     "detailed fees",
			status:   http.StatusOK,
			response: `{"baseFee":"100","executionFeeWithMultiplier":"250","executionFee":"200"}`,
			expected: 350,
		},
		{name: "service error", status: http.StatusOK, response: `{"error":"unsupported chain"}`, err: "unsupported chain"},
		{name: "empty object", status: http.StatusOK, response: `{}`, err: ErrEmptyFee.Error()},
		{name: "not a number", status: http.StatusOK, response: `"lots"`, err: "invalid fee amount"},
		{name: "http error", status: http.StatusInternalServerError, response: "boom", err: "unexpected HTTP status 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.response, nil)
			client := NewAxelarClient(EnvironmentTestnet, server.URL, nil)
			fee, err := client.EstimateGasFee(context.Background(), DefaultFeeRequest())
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, big.NewInt(tt.expected), fee)
		})
	}
}

func TestEstimateGasFeeMissingChains(t *testing.T) {
	client := NewAxelarClient(EnvironmentTestnet, "http://127.0.0.1:1", nil)
	_, err := client.EstimateGasFee(context.Background(), FeeRequest{SourceChain: "ethereum-sepolia"})
	require.ErrorContains(t, err, "needs source and destination chains")
}
