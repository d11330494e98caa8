package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/errors"
)

// Discover walks dir and returns the absolute paths of every manifest file
// named after the provider's convention. VCS metadata and hidden directories
// are skipped. The returned order is the walk order, which is stable for a
// given tree.
func Discover(dir string, provider StructureProvider) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get absolute path of %q", dir)
	}

	manifestName := provider.ManifestFilename()
	var manifests []string

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Debugf("failed to access path %q: %s", path, err.Error())
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Name() == manifestName {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not discover manifests under %q", dir)
	}

	log.Debugf("discovered %d manifests under %q", len(manifests), dir)
	return manifests, nil
}
