package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shlibdeps/cmd/shlibdeps/commands"
	"go.trai.ch/shlibdeps/internal/app"
	"go.trai.ch/shlibdeps/internal/build"
)

type mockGenerator struct {
	generateFunc func(ctx context.Context, opts app.GenerateOptions) error
}

func (m *mockGenerator) Generate(ctx context.Context, opts app.GenerateOptions) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return nil
}

type mockLogControl struct {
	json    bool
	verbose bool
}

func (m *mockLogControl) SetJSON(enable bool)    { m.json = enable }
func (m *mockLogControl) SetVerbose(enable bool) { m.verbose = enable }

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.GenerateOptions
		called := false

		mock := &mockGenerator{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"generate", "./bin/app", "./bin/tool",
			"-o", "deps.manifest",
			"-L", "./build/lib", "-L", "./vendor/lib",
			"--versions",
			"--exclude", "libc6",
			"-c", "custom.yaml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"./bin/app", "./bin/tool"}, captured.Inputs)
		assert.Equal(t, "deps.manifest", captured.Settings.Output)
		assert.Equal(t, []string{"./build/lib", "./vendor/lib"}, captured.Settings.LibraryPaths)
		assert.True(t, captured.Settings.Versions)
		assert.Equal(t, []string{"libc6"}, captured.Settings.Exclude)
		assert.Equal(t, "custom.yaml", captured.ConfigPath)
	})

	t.Run("dash output means stdout", func(t *testing.T) {
		var captured app.GenerateOptions
		mock := &mockGenerator{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"generate", "./bin/app", "-o", "-"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.Settings.Output)
	})

	t.Run("returns error on generate failure", func(t *testing.T) {
		mock := &mockGenerator{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"generate", "./bin/app"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires at least one executable", func(t *testing.T) {
		mock := &mockGenerator{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"generate"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires at least 1 arg")
	})
}

func TestCommands_LogFlags(t *testing.T) {
	logs := &mockLogControl{}
	cli := commands.New(&mockGenerator{}, logs)
	cli.SetArgs([]string{"generate", "./bin/app", "--json-logs", "-v"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logs.json)
	assert.True(t, logs.verbose)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockGenerator{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
