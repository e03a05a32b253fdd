// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package gas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EnvironmentTestnet = "testnet"
	EnvironmentMainnet = "mainnet"
)

var ErrEmptyFee = errors.New("gas fee response carries no fee")

type AxelarClient struct {
	URL        string
	HTTPClient *http.Client
	log        *zap.Logger
}

// NewAxelarClient returns a client for the GMP API of the given environment.
// A non empty url overrides the environment default.
func NewAxelarClient(env string, url string, log *zap.Logger) *AxelarClient {
	if url == "" {
		url = constants.AxelarTestnetAPIURL
		if env == EnvironmentMainnet {
			url = constants.AxelarMainnetAPIURL
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AxelarClient{
		URL:        strings.TrimSuffix(url, "/"),
		HTTPClient: &http.Client{Timeout: constants.APIRequestTimeout},
		log:        log,
	}
}

type estimateGasFeeRequest struct {
	Method            string `json:"method"`
	SourceChain       string `json:"sourceChain"`
	DestinationChain  string `json:"destinationChain"`
	SourceTokenSymbol string `json:"sourceTokenSymbol"`
	GasLimit          uint64 `json:"gasLimit"`
	GasMultiplier     string `json:"gasMultiplier,omitempty"`
	MinGasPrice       string `json:"minGasPrice,omitempty"`
	ShowDetailedFees  bool   `json:"showDetailedFees"`
}

func (c *AxelarClient) EstimateGasFee(ctx context.Context, req FeeRequest) (*big.Int, error) {
	if req.SourceChain == "" || req.DestinationChain == "" {
		return nil, errors.New("gas fee request needs source and destination chains")
	}
	body := estimateGasFeeRequest{
		Method:            "estimateGasFee",
		SourceChain:       req.SourceChain,
		DestinationChain:  req.DestinationChain,
		SourceTokenSymbol: req.GasToken,
		GasLimit:          req.GasLimit,
	}
	if req.GasMultiplier > 0 {
		body.GasMultiplier = decimal.NewFromFloat(req.GasMultiplier).String()
	}
	if req.MinGasPrice != nil && req.MinGasPrice.Sign() > 0 {
		body.MinGasPrice = req.MinGasPrice.String()
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("estimating gas fee",
		zap.String("url", c.URL),
		zap.String("source", req.SourceChain),
		zap.String("destination", req.DestinationChain),
		zap.Uint64("gasLimit", req.GasLimit),
	)
	resp, err := utils.MakePostRequest(ctx, c.HTTPClient, c.URL, payload)
	if err != nil {
		return nil, fmt.Errorf("failure estimating gas fee: %w", err)
	}
	fee, err := parseFee(resp)
	if err != nil {
		return nil, fmt.Errorf("failure estimating gas fee: %w", err)
	}
	c.log.Debug("gas fee estimated", zap.String("fee", fee.String()))
	return fee, nil
}

type detailedFee struct {
	Result                     json.RawMessage `json:"result"`
	BaseFee                    json.RawMessage `json:"baseFee"`
	ExecutionFeeWithMultiplier json.RawMessage `json:"executionFeeWithMultiplier"`
	Error                      json.RawMessage `json:"error"`
}

// parseFee accepts a bare amount (string or number) or an object with either
// a result field or the detailed baseFee and executionFeeWithMultiplier
// fields
func parseFee(resp []byte) (*big.Int, error) {
	trimmed := strings.TrimSpace(string(resp))
	if trimmed == "" {
		return nil, ErrEmptyFee
	}
	if !strings.HasPrefix(trimmed, "{") {
		return parseAmount(json.RawMessage(trimmed))
	}
	var d detailedFee
	if err := json.Unmarshal([]byte(trimmed), &d); err != nil {
		return nil, fmt.Errorf("invalid gas fee response: %w", err)
	}
	if len(d.Error) > 0 && string(d.Error) != "null" {
		return nil, fmt.Errorf("gas fee service error: %s", string(d.Error))
	}
	if len(d.Result) > 0 && string(d.Result) != "null" {
		if strings.HasPrefix(strings.TrimSpace(string(d.Result)), "{") {
			return parseFee(d.Result)
		}
		return parseAmount(d.Result)
	}
	if len(d.BaseFee) == 0 || len(d.ExecutionFeeWithMultiplier) == 0 {
		return nil, ErrEmptyFee
	}
	base, err := parseAmount(d.BaseFee)
	if err != nil {
		return nil, err
	}
	execution, err := parseAmount(d.ExecutionFeeWithMultiplier)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(base, execution), nil
}

func parseAmount(raw json.RawMessage) (*big.Int, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid fee amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("invalid fee amount %q: negative", s)
	}
	return d.Truncate(0).BigInt(), nil
}
