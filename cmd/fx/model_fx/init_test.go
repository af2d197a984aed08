package model_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestProvideModelClientClosedOnStop(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")

	lc := fxtest.NewLifecycle(t)
	client := ProvideModelClient(lc)
	assert.NotNil(t, client)

	lc.RequireStart()
	// RequireStop runs the OnStop hook, which closes the client.
	lc.RequireStop()
}

func TestProvideModelClientDisabled(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "none")

	lc := fxtest.NewLifecycle(t)
	assert.Nil(t, ProvideModelClient(lc))

	lc.RequireStart()
	lc.RequireStop()
}
