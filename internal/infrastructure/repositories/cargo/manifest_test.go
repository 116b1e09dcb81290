//go:build unit

package cargo_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/cargo"
)

func TestRenderFetchManifest(t *testing.T) {
	t.Parallel()

	t.Run("should pin the single dependency to the exact version", func(t *testing.T) {
		t.Parallel()

		// given
		id, err := entities.ParsePackageID("thread_local:0.3.6")
		require.NoError(t, err)

		// when
		data, err := cargo.RenderFetchManifest(id)

		// then
		require.NoError(t, err)
		var decoded struct {
			Package struct {
				Name    string `toml:"name"`
				Version string `toml:"version"`
			} `toml:"package"`
			Lib struct {
				Path string `toml:"path"`
			} `toml:"lib"`
			Dependencies map[string]string `toml:"dependencies"`
		}
		_, err = toml.Decode(string(data), &decoded)
		require.NoError(t, err)
		assert.Equal(t, "cargo-review-deps-temp-pkg", decoded.Package.Name)
		assert.Equal(t, "0.0.0", decoded.Package.Version)
		assert.Equal(t, "./Cargo.toml", decoded.Lib.Path)
		assert.Equal(t, map[string]string{"thread_local": "=0.3.6"}, decoded.Dependencies)
	})
}
