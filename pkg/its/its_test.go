// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/interchain-tools/its-cli/internal/mocks"
	"github.com/interchain-tools/its-cli/pkg/addressbook"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	signer         = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	tokenID        = [32]byte{0xaa, 0xbb}
	tokenAddress   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	managerAddress = common.HexToAddress("0x2000000000000000000000000000000000000002")
	testTx         = types.NewTx(&types.LegacyTx{Nonce: 7, Gas: 21000, GasPrice: big.NewInt(1)})
	testReceipt    = &types.Receipt{Status: types.ReceiptStatusSuccessful}
	testFee        = big.NewInt(1_000_000_000)
)

func setup(t *testing.T) (*require.Assertions, *mocks.Caller, *mocks.Estimator) {
	ux.NewUserLog(zap.NewNop(), io.Discard)
	caller := &mocks.Caller{}
	estimator := &mocks.Estimator{}
	t.Cleanup(func() {
		caller.AssertExpectations(t)
		estimator.AssertExpectations(t)
	})
	return require.New(t), caller, estimator
}

func testSalt(t *testing.T) [32]byte {
	salt, err := utils.ParseSalt(DefaultRemoteDeploySalt)
	require.NoError(t, err)
	return salt
}

func expectTokenIDCalls(caller *mocks.Caller, salt [32]byte) []*mock.Call {
	return []*mock.Call{
		caller.On("Call", mock.Anything, DefaultFactoryAddress, interchainTokenIDSpec, []interface{}{signer, salt}).
			Return([]interface{}{tokenID}, nil).Once(),
		caller.On("Call", mock.Anything, DefaultServiceAddress, interchainTokenAddressSpec, []interface{}{tokenID}).
			Return([]interface{}{tokenAddress}, nil).Once(),
		caller.On("Call", mock.Anything, DefaultServiceAddress, tokenManagerAddressSpec, []interface{}{tokenID}).
			Return([]interface{}{managerAddress}, nil).Once(),
	}
}

func TestInterchainTokenID(t *testing.T) {
	require, caller, _ := setup(t)
	salt := testSalt(t)
	caller.On("Address").Return(signer)
	mock.InOrder(expectTokenIDCalls(caller, salt)...)

	r, err := InterchainTokenID(context.Background(), caller, DefaultAddresses(), salt)
	require.NoError(err)
	require.Equal(tokenID, r.TokenID)
	require.Equal(tokenAddress, r.TokenAddress)
	require.Equal(managerAddress, r.TokenManagerAddress)
	require.Equal(signer, r.Deployer)
	r.Print()
}

func TestInterchainTokenIDBadReturn(t *testing.T) {
	require, caller, _ := setup(t)
	salt := testSalt(t)
	caller.On("Address").Return(signer)
	caller.On("Call", mock.Anything, DefaultFactoryAddress, interchainTokenIDSpec, []interface{}{signer, salt}).
		Return([]interface{}{"not an id"}, nil).Once()

	_, err := InterchainTokenID(context.Background(), caller, DefaultAddresses(), salt)
	require.ErrorContains(err, "error at interchainTokenId call")
}

func TestRegisterAndDeploy(t *testing.T) {
	require, caller, _ := setup(t)
	salt := testSalt(t)
	params := DefaultDeployParams()
	params.Salt = &salt
	supply, _ := new(big.Int).SetString("1000000000000000000000", 10)

	caller.On("Address").Return(signer)
	calls := expectTokenIDCalls(caller, salt)
	calls = append(calls, caller.On(
		"Transact",
		mock.Anything,
		DefaultFactoryAddress,
		(*big.Int)(nil),
		deployInterchainTokenSpec,
		[]interface{}{salt, "New Interchain Token", "NIT", uint8(18), supply, signer},
	).Return(testTx, testReceipt, nil).Once())
	mock.InOrder(calls...)

	r, err := RegisterAndDeploy(context.Background(), caller, DefaultAddresses(), params)
	require.NoError(err)
	require.Equal(testTx.Hash(), r.TxHash)
	require.Equal(tokenID, r.TokenID)
	require.Equal(salt, r.Salt)
	r.Print(models.Network{Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"})
}

func TestRegisterAndDeployRandomSalt(t *testing.T) {
	require, caller, _ := setup(t)
	caller.On("Address").Return(signer)
	var usedSalt [32]byte
	caller.On("Call", mock.Anything, DefaultFactoryAddress, interchainTokenIDSpec, mock.Anything).
		Run(func(args mock.Arguments) {
			usedSalt = args.Get(3).([]interface{})[1].([32]byte)
		}).
		Return([]interface{}{tokenID}, nil).Once()
	caller.On("Call", mock.Anything, DefaultServiceAddress, mock.Anything, []interface{}{tokenID}).
		Return([]interface{}{tokenAddress}, nil).Twice()
	caller.On("Transact", mock.Anything, DefaultFactoryAddress, (*big.Int)(nil), deployInterchainTokenSpec, mock.Anything).
		Return(testTx, testReceipt, nil).Once()

	r, err := RegisterAndDeploy(context.Background(), caller, DefaultAddresses(), DefaultDeployParams())
	require.NoError(err)
	require.NotEqual([32]byte{}, usedSalt)
	require.Equal(usedSalt, r.Salt)
}

func TestRegisterAndDeployFailure(t *testing.T) {
	require, caller, _ := setup(t)
	salt := testSalt(t)
	params := DefaultDeployParams()
	params.Salt = &salt
	reverted := errors.New("execution reverted")

	caller.On("Address").Return(signer)
	expectTokenIDCalls(caller, salt)
	caller.On("Transact", mock.Anything, DefaultFactoryAddress, (*big.Int)(nil), deployInterchainTokenSpec, mock.Anything).
		Return(nil, nil, reverted).Once()

	_, err := RegisterAndDeploy(context.Background(), caller, DefaultAddresses(), params)
	require.ErrorIs(err, reverted)
	require.ErrorContains(err, "failure deploying interchain token")
}

func TestDeployRemoteInterchainToken(t *testing.T) {
	require, caller, estimator := setup(t)
	salt := testSalt(t)
	value := big.NewInt(2_000_000_000)

	caller.On("Address").Return(signer)
	mock.InOrder(
		estimator.On("EstimateGasFee", mock.Anything, gas.DefaultFeeRequest()).Return(testFee, nil).Once(),
		caller.On(
			"Transact",
			mock.Anything,
			DefaultFactoryAddress,
			value,
			deployRemoteInterchainTokenSpec,
			[]interface{}{"Ethereum Sepolia", salt, signer, "Blast Sepolia Testnet", value},
		).Return(testTx, testReceipt, nil).Once(),
	)

	r, err := DeployRemoteInterchainToken(context.Background(), caller, estimator, DefaultAddresses(), RemoteDeployParams{
		OriginChain:      DefaultOriginChain,
		DestinationChain: DefaultRemoteChain,
		Salt:             salt,
		FeeRequest:       gas.DefaultFeeRequest(),
	})
	require.NoError(err)
	require.Equal(value, r.Fee)
	require.Equal(testTx.Hash(), r.TxHash)
	r.Print(models.Network{})
}

func TestDeployRemoteGasFailure(t *testing.T) {
	require, caller, estimator := setup(t)
	unavailable := errors.New("service unavailable")
	estimator.On("EstimateGasFee", mock.Anything, gas.DefaultFeeRequest()).Return(nil, unavailable).Once()

	_, err := DeployRemoteInterchainToken(context.Background(), caller, estimator, DefaultAddresses(), RemoteDeployParams{
		Salt:       testSalt(t),
		FeeRequest: gas.DefaultFeeRequest(),
	})
	require.ErrorIs(err, unavailable)
	caller.AssertNotCalled(t, "Transact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInterchainTransfer(t *testing.T) {
	require, caller, estimator := setup(t)
	amount := utils.ApplyDefaultDenomination(25)

	mock.InOrder(
		estimator.On("EstimateGasFee", mock.Anything, gas.DefaultFeeRequest()).Return(testFee, nil).Once(),
		caller.On(
			"Transact",
			mock.Anything,
			DefaultTokenAddress,
			testFee,
			interchainTransferSpec,
			[]interface{}{"Polygon", DefaultRecipient.Bytes(), amount, []byte{}},
		).Return(testTx, testReceipt, nil).Once(),
	)

	r, err := InterchainTransfer(context.Background(), caller, estimator, TransferParams{
		Token:            DefaultTokenAddress,
		DestinationChain: DefaultTransferChain,
		Recipient:        DefaultRecipient,
		Amount:           amount,
		FeeRequest:       gas.DefaultFeeRequest(),
	})
	require.NoError(err)
	require.Equal(testFee, r.Fee)
}

func TestMint(t *testing.T) {
	require, caller, _ := setup(t)
	amount := utils.ApplyDefaultDenomination(1000)
	caller.On("Transact", mock.Anything, DefaultTokenAddress, (*big.Int)(nil), mintSpec, []interface{}{DefaultRecipient, amount}).
		Return(testTx, testReceipt, nil).Once()

	r, err := Mint(context.Background(), caller, MintParams{
		Token:     DefaultTokenAddress,
		Recipient: DefaultRecipient,
		Amount:    amount,
	})
	require.NoError(err)
	require.Nil(r.Fee)
	require.Equal(testTx.Hash(), r.TxHash)
}

func TestTokenManagerParams(t *testing.T) {
	encoded, err := TokenManagerParams(DefaultTokenManagerOperator, DefaultTokenManagerToken)
	require.NoError(t, err)
	require.Equal(t,
		"0x"+
			"0000000000000000000000000000000000000000000000000000000000000040"+
			"00000000000000000000000003bf6e95090fd4cbe1e7bdb2b2228113303c0c5f"+
			"0000000000000000000000000000000000000000000000000000000000000014"+
			"8b736035bbda71825e0219f5fe4dfb22c35fbddc000000000000000000000000",
		hexutil.Encode(encoded),
	)
}

func TestDeployTokenManager(t *testing.T) {
	require, caller, estimator := setup(t)
	salt := testSalt(t)
	setupParams, err := TokenManagerParams(DefaultTokenManagerOperator, DefaultTokenManagerToken)
	require.NoError(err)

	mock.InOrder(
		estimator.On("EstimateGasFee", mock.Anything, gas.DefaultFeeRequest()).Return(testFee, nil).Once(),
		caller.On(
			"Transact",
			mock.Anything,
			DefaultServiceAddress,
			testFee,
			deployTokenManagerSpec,
			[]interface{}{salt, "Blast Sepolia Testnet", uint8(0), setupParams, testFee},
		).Return(testTx, testReceipt, nil).Once(),
	)

	r, err := DeployTokenManager(context.Background(), caller, estimator, DefaultAddresses(), TokenManagerDeployParams{
		Salt:             &salt,
		DestinationChain: DefaultTokenManagerChain,
		Type:             NativeInterchainToken,
		Operator:         DefaultTokenManagerOperator,
		Token:            DefaultTokenManagerToken,
		FeeRequest:       gas.DefaultFeeRequest(),
	})
	require.NoError(err)
	require.Equal(NativeInterchainToken, r.Type)
	require.Equal("native interchain token", r.Type.String())
	r.Print(models.Network{})
}

func TestEstimateGas(t *testing.T) {
	require, _, estimator := setup(t)
	req := gas.DefaultFeeRequest()
	estimator.On("EstimateGasFee", mock.Anything, req).Return(testFee, nil).Once()

	r, err := EstimateGas(context.Background(), estimator, req)
	require.NoError(err)
	require.Equal(testFee, r.Fee)
	r.Print()
}

func TestDeployItsToken(t *testing.T) {
	require, caller, _ := setup(t)
	fs := afero.NewMemMapFs()
	bytecode := []byte{0x60, 0x80}
	deployed := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	book, err := addressbook.Load(fs, "deployments.json")
	require.NoError(err)
	caller.On("Deploy", mock.Anything, bytecode, "", []interface{}(nil)).
		Return(deployed, testTx, testReceipt, nil).Twice()

	r, err := DeployItsToken(context.Background(), caller, book, "dev", bytecode)
	require.NoError(err)
	require.Equal("dev.itsToken", r.KeyPath)
	r.Print(models.Network{})
	first, err := afero.ReadFile(fs, "deployments.json")
	require.NoError(err)
	require.Equal("{\n  \"dev\": {\n    \"itsToken\": \"0x5FbDB2315678afecb367f032d93F642f64180aa3\"\n  }\n}\n", string(first))

	// redeploying to the same address leaves the book untouched
	_, err = DeployItsToken(context.Background(), caller, book, "dev", bytecode)
	require.NoError(err)
	second, err := afero.ReadFile(fs, "deployments.json")
	require.NoError(err)
	require.Equal(first, second)
}

func TestDeployItsTokenFailureKeepsBook(t *testing.T) {
	require, caller, _ := setup(t)
	fs := afero.NewMemMapFs()
	book, err := addressbook.Load(fs, "deployments.json")
	require.NoError(err)
	caller.On("Deploy", mock.Anything, mock.Anything, "", mock.Anything).
		Return(common.Address{}, nil, nil, errors.New("insufficient funds")).Once()

	_, err = DeployItsToken(context.Background(), caller, book, "dev", []byte{0x00})
	require.ErrorContains(err, "insufficient funds")
	exists, err := afero.Exists(fs, "deployments.json")
	require.NoError(err)
	require.False(exists)
}

func TestResolveAddresses(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	book, err := addressbook.Load(fs, "deployments.json")
	require.NoError(err)

	addrs, err := ResolveAddresses(nil, "sepolia")
	require.NoError(err)
	require.Equal(DefaultAddresses(), addrs)

	require.NoError(book.Set("sepolia.interchainTokenService", tokenAddress.Hex()))
	addrs, err = ResolveAddresses(book, "sepolia")
	require.NoError(err)
	require.Equal(tokenAddress, addrs.Service)
	require.Equal(DefaultFactoryAddress, addrs.Factory)

	addrs, err = ResolveAddresses(book, "dev")
	require.NoError(err)
	require.Equal(DefaultAddresses(), addrs)
}
