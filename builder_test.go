// FILE: flagini/builder_test.go
package flagini

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("StructAndArgs", func(t *testing.T) {
		opts := appOptions{Name: "world"}

		fs, err := NewBuilder().
			WithStruct(&opts).
			WithArgs([]string{"prog", "--name", "gopher", "--verbose"}).
			Build()
		require.NoError(t, err)
		require.NotNil(t, fs)

		assert.Equal(t, "gopher", opts.Name)
		assert.True(t, opts.Verbose)
	})

	t.Run("ConfigFlag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.ini")
		require.NoError(t, os.WriteFile(path, []byte("server.port = 9090\n"), 0644))

		opts := appOptions{}
		opts.Server.Port = 8080

		_, err := NewBuilder().
			WithStruct(&opts).
			WithConfigFlag("config", 'c', "Config file path").
			WithArgs([]string{"prog", "--config", path}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 9090, opts.Server.Port)
	})

	t.Run("DirectFlagRegistration", func(t *testing.T) {
		var count int

		fs, err := NewBuilder().
			WithFlags(func(fs *FlagSet) {
				fs.IntVar(&count, "count", 'n', 3, "a count")
			}).
			WithArgs([]string{"prog", "-n", "7"}).
			Build()
		require.NoError(t, err)
		require.NotNil(t, fs)
		assert.Equal(t, 7, count)
	})

	t.Run("IgnoreUnknown", func(t *testing.T) {
		opts := appOptions{}

		_, err := NewBuilder().
			WithStruct(&opts).
			WithIgnoreUnknown().
			WithArgs([]string{"prog", "--nope", "--verbose"}).
			Build()
		require.NoError(t, err)
		assert.True(t, opts.Verbose)
	})

	t.Run("ParseFailureReturnsSet", func(t *testing.T) {
		fs, err := NewBuilder().
			WithStruct(&appOptions{}).
			WithArgs([]string{"prog", "--nope"}).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFlag)
		// The set comes back so the caller can render the diagnostic.
		require.NotNil(t, fs)
		assert.Equal(t, CodeUnknownFlag, fs.Err().Code)
	})

	t.Run("RegistrationFailure", func(t *testing.T) {
		var bad struct {
			Levels []string `flag:"levels"`
		}
		fs, err := NewBuilder().
			WithStruct(&bad).
			WithArgs([]string{"prog"}).
			Build()
		require.Error(t, err)
		assert.Nil(t, fs)
		assert.Contains(t, err.Error(), "failed to register defaults")
	})

	t.Run("Validator", func(t *testing.T) {
		opts := appOptions{}
		opts.Server.Port = 8080

		validator := func(fs *FlagSet) error {
			f := fs.lookupKey("server.port")
			if port := f.Value().(int); port < 1024 {
				return fmt.Errorf("port %d below 1024", port)
			}
			return nil
		}

		_, err := NewBuilder().
			WithStruct(&opts).
			WithValidator(validator).
			WithArgs([]string{"prog", "--server.port", "9090"}).
			Build()
		require.NoError(t, err)

		_, err = NewBuilder().
			WithStruct(&opts).
			WithValidator(validator).
			WithArgs([]string{"prog", "--server.port", "80"}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("MustBuildPanicsOnFailure", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().
				WithStruct(&appOptions{}).
				WithArgs([]string{"prog", "--nope"}).
				MustBuild()
		})
	})

	t.Run("MustBuildToleratesHelp", func(t *testing.T) {
		var fs *FlagSet
		assert.NotPanics(t, func() {
			fs = NewBuilder().
				WithStruct(&appOptions{}).
				WithArgs([]string{"prog", "--help"}).
				MustBuild()
		})
		require.NotNil(t, fs)
		assert.Equal(t, CodeHelp, fs.Err().Code)
	})

	t.Run("BuildAndScan", func(t *testing.T) {
		var out appOptions

		err := NewBuilder().
			WithStruct(&appOptions{Name: "world"}).
			WithArgs([]string{"prog", "--name", "gopher"}).
			BuildAndScan(&out)
		require.NoError(t, err)
		assert.Equal(t, "gopher", out.Name)
	})
}
