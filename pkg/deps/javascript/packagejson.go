package javascript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
)

// Language describes the Node.js ecosystem.
var Language = &deps.Language{
	Ecosystem:    deps.EcosystemNode,
	Title:        "Node.js",
	ManifestFile: "package.json",
	Parse:        ParsePackageJSON,
}

// ParsePackageJSON extracts runtime and development dependencies from
// package.json content. Malformed JSON yields an
// [errors.ErrCodeInvalidManifest] error.
func ParsePackageJSON(data []byte) ([]deps.Dependency, error) {
	runtime, dev, err := decodeGroups(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse package.json")
	}
	out := make([]deps.Dependency, 0, len(runtime)+len(dev))
	out = append(out, runtime...)
	out = append(out, dev...)
	return out, nil
}

// NormalizeVersion strips range operators and whitespace from an npm
// version specifier.
func NormalizeVersion(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune("^~>=<", r) {
			return -1
		}
		return r
	}, v)
}

// decodeGroups walks the token stream so that declaration order survives;
// decoding into a map would lose it.
func decodeGroups(data []byte) (runtime, dev []deps.Dependency, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}
		switch key {
		case "dependencies":
			if runtime, err = readGroup(dec, deps.KindRuntime); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", key, err)
			}
		case "devDependencies":
			if dev, err = readGroup(dec, deps.KindDevelopment); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", key, err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("unexpected data after top-level object")
	}
	return runtime, dev, nil
}

// readGroup reads one name-to-version object. A null group is empty.
// Repeated names keep their first position and their last version.
func readGroup(dec *json.Decoder, kind deps.Kind) ([]deps.Dependency, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var out []deps.Dependency
	index := make(map[string]int)
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		version, _ := raw.(string)
		d := deps.Dependency{Name: name, Version: NormalizeVersion(version), Kind: kind}
		if i, ok := index[name]; ok {
			out[i] = d
			continue
		}
		index[name] = len(out)
		out = append(out, d)
	}
	return out, expectDelim(dec, '}')
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
