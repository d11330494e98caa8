// Package maven reads Maven POM manifest files.
package maven

import (
	"encoding/xml"

	"github.com/depscan/depscan-cli/files"
)

// A Manifest represents a POM manifest file.
type Manifest struct {
	Project    xml.Name `xml:"project"`
	Parent     Parent   `xml:"parent"`
	Modules    []string `xml:"modules>module"`
	ArtifactID string   `xml:"artifactId"`
	GroupID    string   `xml:"groupId"`
	Version    string   `xml:"version"`
	Packaging  string   `xml:"packaging"`
	Name       string   `xml:"name"`
	URL        string   `xml:"url"`
}

type Parent struct {
	ArtifactID string `xml:"artifactId"`
	GroupID    string `xml:"groupId"`
	Version    string `xml:"version"`
}

// ReadManifest parses the POM file at path.
func ReadManifest(path string) (Manifest, error) {
	var pom Manifest
	if err := files.ReadXML(&pom, path); err != nil {
		return Manifest{}, err
	}
	return pom, nil
}
