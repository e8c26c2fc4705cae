package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/dashrunner/movement"
	"github.com/milk9111/dashrunner/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	actions, err := parseScript("move:1 move:-0.5,1 wait:3 jump dash release")
	require.NoError(t, err)
	assert.Equal(t, []action{
		{kind: "move", x: 1},
		{kind: "move", x: -0.5, y: 1},
		{kind: "wait", steps: 3},
		{kind: "jump"},
		{kind: "dash"},
		{kind: "release"},
	}, actions)
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"wait:0", "wait:x", "move:a", "move:1,b", "fly"} {
		t.Run(script, func(t *testing.T) {
			_, err := parseScript(script)
			assert.Error(t, err)
		})
	}
}

func newTestTracer(t *testing.T) *tracer {
	t.Helper()
	spec, err := prefabs.LoadCharacterSpec()
	require.NoError(t, err)
	tr, err := newTracer(spec)
	require.NoError(t, err)
	return tr
}

func TestTraceRunLandsAndRuns(t *testing.T) {
	tr := newTestTracer(t)
	actions, err := parseScript("wait:60 move:1,0 wait:120")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, tr.run(&out, actions, false))

	assert.Equal(t, movement.Grounded, tr.ctrl.State())
	assert.InDelta(t, 5.0, tr.body.Velocity().X, 0.05)
	assert.Contains(t, out.String(), "grounded")
	assert.True(t, strings.HasPrefix(out.String(), "step"))
}

func TestTraceRunEveryStep(t *testing.T) {
	tr := newTestTracer(t)
	var out bytes.Buffer
	require.NoError(t, tr.run(&out, []action{{kind: "wait", steps: 5}}, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 6)
}

func TestTraceJumpAndDash(t *testing.T) {
	tr := newTestTracer(t)
	actions, err := parseScript("wait:60 jump wait:2 dash wait:1")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, tr.run(&out, actions, false))
	assert.Equal(t, movement.Dashing, tr.ctrl.State())
	assert.False(t, tr.ctrl.CanDash())
	assert.Contains(t, out.String(), "dash")
}
