package cargo

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"go.trai.ch/zerr"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

const (
	fetchPackageName    = "cargo-review-deps-temp-pkg"
	fetchPackageVersion = "0.0.0"
	manifestFileName    = "Cargo.toml"
)

// fetchManifest is a throwaway package whose only purpose is to depend on one exact crate
// version. Pointing the lib target at the manifest itself keeps cargo from requiring src/.
type fetchManifest struct {
	Package      manifestPackage   `toml:"package"`
	Lib          manifestLib       `toml:"lib"`
	Dependencies map[string]string `toml:"dependencies"`
}

type manifestPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type manifestLib struct {
	Path string `toml:"path"`
}

// RenderFetchManifest returns a Cargo.toml declaring id as its single dependency, pinned with "=".
func RenderFetchManifest(id entities.PackageID) ([]byte, error) {
	manifest := fetchManifest{
		Package: manifestPackage{Name: fetchPackageName, Version: fetchPackageVersion},
		Lib:     manifestLib{Path: "./" + manifestFileName},
		Dependencies: map[string]string{
			id.Name(): "=" + id.Version(),
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to render fetch manifest"), "package", id.String())
	}
	return buf.Bytes(), nil
}
