// Package maven parses the subset of pom.xml that detection probes need:
// parent coordinates, properties and declared dependencies. Parsing matches
// elements by local name, so POMs with or without the Maven namespace
// declaration are handled identically.
package maven

import (
	"encoding/xml"
	"os"
	"strings"
)

// POM is the parsed subset of a Maven project manifest.
type POM struct {
	XMLName      xml.Name     `xml:"project"`
	Parent       Coordinates  `xml:"parent"`
	Properties   Properties   `xml:"properties"`
	Dependencies []Dependency `xml:"dependencies>dependency"`
}

// Coordinates identify a Maven artifact.
type Coordinates struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// Dependency is a single declared dependency.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// Properties holds the free-form <properties> block as a key/value map.
type Properties map[string]string

// UnmarshalXML collects arbitrary child elements into the map.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = Properties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// Get returns the property value for key, or "" when absent.
func (p Properties) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Parse reads and parses a pom.xml file.
func Parse(path string) (*POM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pom POM
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, err
	}
	return &pom, nil
}
