// Package composer parses composer.json manifests and fetches them from
// forge raw-content endpoints.
//
// The require map is kept in declaration order: walk order and report order
// follow the manifest, so parsing goes through a token-level JSON decoder
// instead of an unordered map.
package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	errs "github.com/thejimbirch/dependgen/pkg/errors"
)

// Dependency is one entry of a manifest's require map.
type Dependency struct {
	Name       string
	Constraint string
}

// Manifest is a parsed composer.json. It is never mutated after parse.
type Manifest struct {
	Name    string       // package name; empty when the manifest omits it
	Type    string       // package type ("drupal-module", "project", ...)
	Require []Dependency // declared dependencies, in declaration order
}

// composer package names are vendor/name, lowercase, per the composer schema.
var packageNamePattern = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)

// IsPackageName reports whether name follows the composer vendor/name
// convention. Platform pseudo-dependencies like "php" or "ext-json" do not,
// and are recorded as edges without being resolved further.
func IsPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// Parse decodes a composer.json document. A missing type defaults to
// "unknown"; a missing name is left empty for the caller to fill from the
// repository reference.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	m := &Manifest{Type: "unknown"}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("composer.json: unexpected token %v", tok)
		}

		switch key {
		case "name":
			if err := dec.Decode(&m.Name); err != nil {
				return nil, fmt.Errorf("composer.json name: %w", err)
			}
		case "type":
			if err := dec.Decode(&m.Type); err != nil {
				return nil, fmt.Errorf("composer.json type: %w", err)
			}
		case "require":
			deps, err := parseRequire(dec)
			if err != nil {
				return nil, err
			}
			m.Require = deps
		default:
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseRequire(dec *json.Decoder) ([]Dependency, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("composer.json require: %w", err)
	}

	var deps []Dependency
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("composer.json require: unexpected key %v", tok)
		}
		var constraint string
		if err := dec.Decode(&constraint); err != nil {
			return nil, fmt.Errorf("composer.json require %s: %w", name, err)
		}
		deps = append(deps, Dependency{Name: name, Constraint: constraint})
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return deps, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errs.New(errs.ErrCodeInvalidInput, "composer.json: expected %q, got %v", want, tok)
	}
	return nil
}

// skipValue consumes one JSON value of any shape.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
