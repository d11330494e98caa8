package files

import (
	"encoding/json"
	"encoding/xml"

	"github.com/apex/log"
	yaml "gopkg.in/yaml.v2"
)

// ReadJSON parses a JSON file into v.
func ReadJSON(v interface{}, path string) error {
	return ReadUnmarshal(v, path, json.Unmarshal)
}

// ReadXML parses an XML file into v.
func ReadXML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, xml.Unmarshal)
}

// ReadYAML parses a YAML file into v.
func ReadYAML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, yaml.Unmarshal)
}

// An UnmarshalFunc parses bytes into v.
type UnmarshalFunc func(data []byte, v interface{}) error

// ReadUnmarshal reads a file and parses it with the provided UnmarshalFunc.
func ReadUnmarshal(v interface{}, path string, unmarshal UnmarshalFunc) error {
	log.Debugf("parsing file %q", path)
	contents, err := Read(path)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.Debugf("could not parse file %q: %s", path, err.Error())
	}
	return err
}
