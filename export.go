package assistant

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// ExportYAML writes the session document as YAML. It is meant for reading,
// the snapshot itself stays JSON.
func ExportYAML(w io.Writer, s *Session) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(s)); err != nil {
		return fmt.Errorf("cannot export session: %w", err)
	}
	return enc.Close()
}

// Query evaluates a JSONPath expression against the session document, for
// instance "$.contacts[*].name" or "$.notes.items[?(@.id > 2)].text".
func Query(s *Session, path string) (any, error) {
	data, err := json.Marshal(NewDocument(s))
	if err != nil {
		return nil, fmt.Errorf("cannot encode session: %w", err)
	}
	// jsonpath works on the generic representation.
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode session: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
