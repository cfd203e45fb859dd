package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSubcommandsRegistered(t *testing.T) {
	cmd := rootCmd()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
	assert.True(t, names["ledger"])
}

func TestSeedRequiresExactlyOneSource(t *testing.T) {
	_, err := execute(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of --file or --dir")

	_, err = execute(t, "seed", "--file", "a.yaml", "--dir", "seeds")
	require.Error(t, err)
}

func TestSeedMissingFile(t *testing.T) {
	_, err := execute(t, "seed", "--file", t.TempDir()+"/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLedgerRequiresCommittee(t *testing.T) {
	_, err := execute(t, "ledger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--committee is required")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "migrate", "extra")
	assert.Error(t, err)
}
