package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	statePath = filepath.Join(t.TempDir(), "cli", "state.json")

	_, err := getState()
	require.Error(t, err)

	require.NoError(t, setState(map[string]string{
		rpcServerKey: "localhost:9945",
		tlsCertKey:   "",
	}))
	require.NoError(t, setState(map[string]string{tlsCertKey: "cert.pem"}))

	state, err := getState()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		rpcServerKey: "localhost:9945",
		tlsCertKey:   "cert.pem",
	}, state)
}

func TestPageFromFlags(t *testing.T) {
	page, err := pageFromFlags(0, 0)
	require.NoError(t, err)
	require.Nil(t, page)

	page, err = pageFromFlags(2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.GetPageNumber())
	require.Zero(t, page.GetPageSize())

	_, err = pageFromFlags(-1, 10)
	require.Error(t, err)
}
