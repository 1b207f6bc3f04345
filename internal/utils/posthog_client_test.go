package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_DisabledWithoutKey(t *testing.T) {
	w := InitializePosthogClient("", nil)

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("user", "event", map[string]any{"k": "v"})
		w.Close()
	})
}

func TestPosthogClientWrapper_NilReceiver(t *testing.T) {
	var w *PosthogClientWrapper

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() { w.Enqueue("user", "event", nil) })
}
