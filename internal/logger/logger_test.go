package logger

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, pterm.LogLevelDebug, ParseLevel(" DEBUG "))
	require.Equal(t, pterm.LogLevelWarn, ParseLevel("warning"))
	require.Equal(t, pterm.LogLevelInfo, ParseLevel("nonsense"))
	require.Equal(t, pterm.LogLevelInfo, ParseLevel(""))
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	require.Empty(t, buf.String())

	log.Warn("shown", log.Args("category", "Lungs"))
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "Lungs")
}
