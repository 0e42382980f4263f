package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detective_quest/internal/bootstrap"
)

func TestRootCmd_RejectsFlagsAndArgs(t *testing.T) {
	tests := map[string][]string{
		"config flag": {"--config", "game.env"},
		"argument":    {"mansao"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			assert.Error(t, cmd.Execute())
		})
	}

	assert.Nil(t, newRootCmd().Flags().Lookup("config"))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(bootstrap.Config{LogLevel: "debug", LogOutput: "stderr"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(bootstrap.Config{LogLevel: "loud", LogOutput: "stderr"})
	assert.Error(t, err)
}
