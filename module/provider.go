package module

// Packaging is the packaging kind a manifest declares.
type Packaging int

const (
	// Ordinary manifests describe a buildable module with scannable content.
	Ordinary Packaging = iota
	// Aggregator manifests only group other modules.
	Aggregator
)

// A Descriptor is the parsed structure of a single manifest file.
type Descriptor struct {
	// Path is the absolute path of the manifest file.
	Path string
	// Name is a human-readable module name taken from the manifest, or ""
	// if it declares none.
	Name string
	// Packaging is the declared packaging kind.
	Packaging Packaging
	// ModuleRefs are declared sub-module references, relative to the
	// manifest's directory. A ref may name either a directory (holding a
	// conventionally named manifest) or a manifest file itself.
	ModuleRefs []string
}

// A StructureProvider parses manifest files of one build system.
//
// Providers are read-only collaborators: a Descriptor is rebuilt fresh on
// every pipeline run and never cached across runs.
type StructureProvider interface {
	// Read parses the manifest at path.
	Read(path string) (Descriptor, error)

	// ManifestFilename is the conventional manifest name used to resolve a
	// module ref that points at a directory (e.g. "pom.xml").
	ManifestFilename() string
}
