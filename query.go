package fintra

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the ledger snapshot, e.g.
//
//	$.movements[*].title
//	$.incomeFunds[?(@.remaining > 0)]
//
// The expression sees exactly the persisted snapshot shape.
func Query(l *Ledger, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("could not re-read snapshot for query: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return v, nil
}
