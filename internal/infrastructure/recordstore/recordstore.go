// Package recordstore holds the local Record Store implementations. All of
// them keep one ordered JSON array per namespace and upsert documents by id.
package recordstore

import (
	"encoding/json"
	"fmt"

	"paksupply/pkg/logger"
)

type docHeader struct {
	ID string `json:"id"`
}

func docID(doc json.RawMessage) string {
	var h docHeader
	if err := json.Unmarshal(doc, &h); err != nil {
		return ""
	}
	return h.ID
}

// decodeCollection parses a stored namespace blob. Anything that is not a
// JSON array is a cold start, not an error.
func decodeCollection(namespace string, blob []byte) []json.RawMessage {
	if len(blob) == 0 {
		return []json.RawMessage{}
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(blob, &docs); err != nil {
		logger.Warn("record store: namespace %q is unreadable, treating as empty: %v", namespace, err)
		return []json.RawMessage{}
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs
}

func upsert(docs []json.RawMessage, id string, doc json.RawMessage) []json.RawMessage {
	for i, existing := range docs {
		if docID(existing) == id {
			docs[i] = doc
			return docs
		}
	}
	return append(docs, doc)
}

func checkDoc(id string, doc json.RawMessage) error {
	if id == "" {
		return fmt.Errorf("record store: empty id")
	}
	if !json.Valid(doc) {
		return fmt.Errorf("record store: document %q is not valid JSON", id)
	}
	if got := docID(doc); got != id {
		return fmt.Errorf("record store: document id %q does not match key %q", got, id)
	}
	return nil
}

func cloneDocs(docs []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = append(json.RawMessage(nil), d...)
	}
	return out
}
