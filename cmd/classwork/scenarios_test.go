package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brickingsoft/owner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	if err := owner.Startup(); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = owner.ShutdownGracefully()
	os.Exit(code)
}

func TestRunAll(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, run(ctx, zap.NewNop(), "all"))
}

func TestRunLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, run(context.Background(), zap.New(core), "shared"))
	assert.Equal(t, 2, logs.FilterMessage("probe created").Len())
	assert.Equal(t, 2, logs.FilterMessage("probe destroyed").Len())
	assert.Equal(t, 1, logs.FilterMessage("done").Len())
}

func TestRunUnknown(t *testing.T) {
	assert.Error(t, run(context.Background(), zap.NewNop(), "weak"))
	assert.Contains(t, names(), "concurrent")
}
