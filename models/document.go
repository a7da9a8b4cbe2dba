package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is the current StateDocument schema tag. It is stamped on
// every freshly created document and carried through synchronization
// untouched.
const SchemaVersion = "3"

// StateDocument is the root object holding one user's entire application
// state: tasks, habits, journal entries, projects, values, settings. The
// sync core treats the content as opaque — collections are kept as raw JSON
// so that keys added by newer application versions survive a round trip
// through an older client.
//
// Only Version and UpdatedAt are interpreted. UpdatedAt reflects the most
// recent *local* mutation time; it is stamped by the local store adapter on
// save and is never rewritten when a remote document is adopted during
// reconciliation.
type StateDocument struct {
	// Version is the schema version tag of the document.
	Version string

	// UpdatedAt is the time of the most recent local mutation.
	UpdatedAt time.Time

	// Collections maps top-level collection names ("tasks", "journal",
	// "habits", ...) to their raw JSON payloads. Unknown keys are preserved.
	Collections map[string]json.RawMessage
}

// reserved top-level keys lifted out of Collections during (un)marshalling.
const (
	keyVersion   = "version"
	keyUpdatedAt = "updatedAt"
)

// NewDefaultDocument returns an empty but well-formed document: current
// schema version, zero UpdatedAt, no collections. Its richness score is 0.
func NewDefaultDocument() *StateDocument {
	return &StateDocument{
		Version:     SchemaVersion,
		Collections: make(map[string]json.RawMessage),
	}
}

// Collection returns the raw JSON payload of the named collection, or nil
// when the collection is absent.
func (d *StateDocument) Collection(name string) json.RawMessage {
	if d == nil || d.Collections == nil {
		return nil
	}
	return d.Collections[name]
}

// SetCollection replaces the named collection with the given raw payload.
func (d *StateDocument) SetCollection(name string, payload json.RawMessage) {
	if d.Collections == nil {
		d.Collections = make(map[string]json.RawMessage)
	}
	d.Collections[name] = payload
}

// Clone returns a deep copy of the document. The conflict resolver and the
// backup writer rely on Clone so that no caller ever observes a shared
// Collections map.
func (d *StateDocument) Clone() *StateDocument {
	if d == nil {
		return nil
	}

	cp := &StateDocument{
		Version:     d.Version,
		UpdatedAt:   d.UpdatedAt,
		Collections: make(map[string]json.RawMessage, len(d.Collections)),
	}
	for name, payload := range d.Collections {
		buf := make(json.RawMessage, len(payload))
		copy(buf, payload)
		cp.Collections[name] = buf
	}

	return cp
}

// MarshalJSON flattens the document into a single JSON object: the reserved
// "version" and "updatedAt" keys plus every collection at the top level,
// matching the wire and storage shape used by the web client.
func (d *StateDocument) MarshalJSON() ([]byte, error) {
	flat := make(map[string]json.RawMessage, len(d.Collections)+2)
	for name, payload := range d.Collections {
		flat[name] = payload
	}

	version, err := json.Marshal(d.Version)
	if err != nil {
		return nil, fmt.Errorf("encode document version: %w", err)
	}
	flat[keyVersion] = version

	if !d.UpdatedAt.IsZero() {
		updatedAt, err := json.Marshal(d.UpdatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return nil, fmt.Errorf("encode document updatedAt: %w", err)
		}
		flat[keyUpdatedAt] = updatedAt
	}

	return json.Marshal(flat)
}

// UnmarshalJSON is the inverse of MarshalJSON. Collections it does not
// recognize are kept verbatim. A missing or malformed "updatedAt" leaves the
// zero time — the document is then treated as never locally modified.
func (d *StateDocument) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("decode state document: %w", err)
	}

	doc := StateDocument{Collections: make(map[string]json.RawMessage, len(flat))}

	if raw, ok := flat[keyVersion]; ok {
		if err := json.Unmarshal(raw, &doc.Version); err != nil {
			return fmt.Errorf("decode document version: %w", err)
		}
		delete(flat, keyVersion)
	}

	if raw, ok := flat[keyUpdatedAt]; ok {
		var stamp string
		if err := json.Unmarshal(raw, &stamp); err == nil {
			if ts, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
				doc.UpdatedAt = ts
			}
		}
		delete(flat, keyUpdatedAt)
	}

	for name, payload := range flat {
		doc.Collections[name] = payload
	}

	*d = doc
	return nil
}
