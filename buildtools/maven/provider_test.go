package maven_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depscan/depscan-cli/buildtools/maven"
	"github.com/depscan/depscan-cli/module"
)

func TestReadManifest(t *testing.T) {
	pom, err := maven.ReadManifest(filepath.Join("testdata", "pom.xml"))
	assert.NoError(t, err)
	assert.Equal(t, "example-parent", pom.ArtifactID)
	assert.Equal(t, "pom", pom.Packaging)
	assert.Equal(t, []string{"core", "web"}, pom.Modules)
}

func TestProviderReadAggregator(t *testing.T) {
	provider, err := maven.NewProvider(nil)
	assert.NoError(t, err)

	desc, err := provider.Read(filepath.Join("testdata", "pom.xml"))
	assert.NoError(t, err)
	assert.Equal(t, "Example Parent", desc.Name)
	assert.Equal(t, module.Aggregator, desc.Packaging)
	assert.Equal(t, []string{"core", "web"}, desc.ModuleRefs)
}

func TestProviderReadOrdinary(t *testing.T) {
	provider, err := maven.NewProvider(nil)
	assert.NoError(t, err)

	desc, err := provider.Read(filepath.Join("testdata", "core", "pom.xml"))
	assert.NoError(t, err)
	// No <name>, so the artifactId is the display name. Default jar
	// packaging is ordinary.
	assert.Equal(t, "example-core", desc.Name)
	assert.Equal(t, module.Ordinary, desc.Packaging)
	assert.Empty(t, desc.ModuleRefs)
}

func TestProviderOptions(t *testing.T) {
	provider, err := maven.NewProvider(map[string]interface{}{"manifest": "pom-custom.xml"})
	assert.NoError(t, err)
	assert.Equal(t, "pom-custom.xml", provider.ManifestFilename())

	provider, err = maven.NewProvider(nil)
	assert.NoError(t, err)
	assert.Equal(t, "pom.xml", provider.ManifestFilename())
}

func TestProviderReadMissingFile(t *testing.T) {
	provider, err := maven.NewProvider(nil)
	assert.NoError(t, err)

	_, err = provider.Read(filepath.Join("testdata", "does-not-exist.xml"))
	assert.Error(t, err)
}
