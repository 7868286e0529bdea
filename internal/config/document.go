package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/couldyou/pkg/fileutil"
)

// serversKey is the top-level key holding the MCP server map.
const serversKey = "mcpServers"

// Document is a raw configuration layer: a generic JSON object plus the
// order in which server names appeared under the mcpServers key. The order
// is recorded at decode time because Go maps do not preserve it, and the
// parsed Config must list servers in document order.
type Document struct {
	root        map[string]any
	serverOrder []string
}

// Empty returns a document with no keys, the result of loading an absent
// config layer.
func Empty() Document {
	return Document{root: map[string]any{}}
}

// FromBytes decodes a JSON object into a Document. The top-level value
// must be an object; anything else (arrays, scalars, trailing garbage) is
// rejected, since merge and parse are defined over mappings only.
func FromBytes(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Empty(), nil
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return Document{}, err
	}
	if root == nil {
		// JSON "null" decodes into a nil map without error.
		return Document{}, errors.New("document must be a JSON object")
	}

	return Document{
		root:        root,
		serverOrder: serverKeyOrder(data),
	}, nil
}

// LoadRaw reads a configuration layer from path.
//
// A path that does not refer to an existing file yields an empty document,
// not an error: absence of a layer is a normal state. A file that exists
// but does not contain a valid JSON object yields a *MalformedError
// identifying the path. Each call re-reads the file; nothing is cached.
func LoadRaw(path string) (Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return Document{}, &MalformedError{Path: path, Err: err}
	}

	doc, err := FromBytes(data)
	if err != nil {
		return Document{}, &MalformedError{Path: path, Err: err}
	}
	return doc, nil
}

// IsEmpty reports whether the document has no keys.
func (d Document) IsEmpty() bool {
	return len(d.root) == 0
}

// Value returns the raw value for a top-level key.
func (d Document) Value(key string) (any, bool) {
	v, ok := d.root[key]
	return v, ok
}

// ServerNames returns the names under mcpServers in document order.
// Names present in the map but missing from the recorded order (documents
// built programmatically rather than decoded) are appended sorted, so
// iteration always covers every entry deterministically.
func (d Document) ServerNames() []string {
	section, ok := d.root[serversKey].(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(section))
	for _, name := range d.serverOrder {
		if _, ok := section[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) < len(section) {
		var rest []string
		for name := range section {
			if !slices.Contains(names, name) {
				rest = append(rest, name)
			}
		}
		slices.Sort(rest)
		names = append(names, rest...)
	}
	return names
}

// serverKeyOrder walks the raw JSON tokens and records the key order of
// the top-level mcpServers object. Returns nil when the section is absent
// or not an object.
func serverKeyOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)

		if key != serversKey {
			if err := skipValue(dec); err != nil {
				return nil
			}
			continue
		}

		tok, err := dec.Token()
		if err != nil || tok != json.Delim('{') {
			return nil
		}
		var order []string
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil
			}
			name, _ := nameTok.(string)
			order = append(order, name)
			if err := skipValue(dec); err != nil {
				return nil
			}
		}
		return order
	}
	return nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
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
