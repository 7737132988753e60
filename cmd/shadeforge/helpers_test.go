package main

import (
	"bytes"
	"context"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
