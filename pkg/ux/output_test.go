// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrintToUserMirrorsToLog(t *testing.T) {
	require := require.New(t)
	core, logs := observer.New(zap.InfoLevel)
	var out bytes.Buffer
	NewUserLog(zap.New(core), &out)

	Logger.PrintToUser("Token ID: %s", "0x01")

	require.Equal("Token ID: 0x01\n", out.String())
	require.Equal(1, logs.Len())
	require.Equal("Token ID: 0x01", logs.All()[0].Message)
}

func TestCheckmarks(t *testing.T) {
	require := require.New(t)
	color.NoColor = true
	var out bytes.Buffer
	NewUserLog(nil, &out)

	Logger.GreenCheckmarkToUser("done")
	Logger.RedXToUser("failed")

	require.Equal("✓ done\n✗ failed\n", out.String())
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "1_000_000", ConvertToStringWithThousandSeparator(1000000))
	require.Equal(t, "999", ConvertToStringWithThousandSeparator(999))
}

func TestPrintTable(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	NewUserLog(nil, &out)
	tbl := DefaultTable("networks", table.Row{"Name", "RPC"})
	tbl.AppendRow(table.Row{"sepolia", "https://ethereum-sepolia.publicnode.com"})

	Logger.PrintTable(tbl)

	require.Contains(out.String(), "NETWORKS")
	require.Contains(out.String(), "sepolia")
}
