package maven

import (
	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/module"
)

// DefaultManifest is the conventional Maven manifest filename.
const DefaultManifest = "pom.xml"

// Options configure the provider. They are decoded from the free-form
// options map in the configuration file.
type Options struct {
	// Manifest overrides the conventional manifest filename.
	Manifest string `mapstructure:"manifest"`
}

// A Provider parses POM files into manifest descriptors.
type Provider struct {
	Options Options
}

// NewProvider decodes opts and returns a configured Provider.
func NewProvider(opts map[string]interface{}) (*Provider, error) {
	var options Options
	err := mapstructure.Decode(opts, &options)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode maven options")
	}
	log.Debugf("maven provider options: %#v", options)
	return &Provider{Options: options}, nil
}

// ManifestFilename implements module.StructureProvider.
func (p *Provider) ManifestFilename() string {
	if p.Options.Manifest != "" {
		return p.Options.Manifest
	}
	return DefaultManifest
}

// Read implements module.StructureProvider.
func (p *Provider) Read(path string) (module.Descriptor, error) {
	pom, err := ReadManifest(path)
	if err != nil {
		return module.Descriptor{}, errors.Wrapf(err, "could not read POM file %q", path)
	}

	packaging := module.Ordinary
	if pom.Packaging == "pom" {
		packaging = module.Aggregator
	}

	name := pom.Name
	if name == "" {
		name = pom.ArtifactID
	}

	return module.Descriptor{
		Path:       path,
		Name:       name,
		Packaging:  packaging,
		ModuleRefs: pom.Modules,
	}, nil
}
