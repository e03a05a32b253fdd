// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakePostRequest(t *testing.T) {
	require := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(http.MethodPost, r.Method)
		require.Equal("application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		if string(body) == `{"fail":true}` {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("bad request"))
			return
		}
		_, _ = w.Write(body)
	}))
	defer server.Close()

	resp, err := MakePostRequest(context.Background(), server.Client(), server.URL, []byte(`{"a":1}`))
	require.NoError(err)
	require.Equal(`{"a":1}`, string(resp))

	_, err = MakePostRequest(context.Background(), server.Client(), server.URL, []byte(`{"fail":true}`))
	require.ErrorContains(err, "unexpected HTTP status 400")
	require.ErrorContains(err, "bad request")
}

func TestValidateURLFormat(t *testing.T) {
	require.NoError(t, ValidateURLFormat("https://sepolia.blast.io"))
	require.Error(t, ValidateURLFormat("not a url"))
}
