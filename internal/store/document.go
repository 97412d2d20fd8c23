// Package store persists the patient document as a whole. Every backend reads
// and writes the complete id -> record mapping; there are no partial updates
// and no locking, so the last writer wins.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"healthdesk/internal/models"
)

// DocumentStore loads and saves the entire patient document.
type DocumentStore interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// Document is an insertion-ordered mapping of patient id to stored record.
// Replacing an existing id keeps its position; new ids are appended.
type Document struct {
	ids     []string
	records map[string]models.PatientRecord
}

func NewDocument() *Document {
	return &Document{records: make(map[string]models.PatientRecord)}
}

func (d *Document) Len() int {
	return len(d.ids)
}

func (d *Document) Has(id string) bool {
	_, ok := d.records[id]
	return ok
}

func (d *Document) Get(id string) (models.PatientRecord, bool) {
	rec, ok := d.records[id]
	return rec, ok
}

func (d *Document) Put(id string, rec models.PatientRecord) {
	if d.records == nil {
		d.records = make(map[string]models.PatientRecord)
	}
	if _, ok := d.records[id]; !ok {
		d.ids = append(d.ids, id)
	}
	d.records[id] = rec
}

// Delete removes id and reports whether it was present.
func (d *Document) Delete(id string) bool {
	if _, ok := d.records[id]; !ok {
		return false
	}
	delete(d.records, id)
	for i, existing := range d.ids {
		if existing == id {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			break
		}
	}
	return true
}

// IDs returns the ids in document order.
func (d *Document) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Patients returns every record rebuilt as a Patient, in document order.
func (d *Document) Patients() []models.Patient {
	out := make([]models.Patient, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.records[id].Patient(id))
	}
	return out
}

// Clone returns an independent copy.
func (d *Document) Clone() *Document {
	c := NewDocument()
	for _, id := range d.ids {
		c.Put(id, d.records[id])
	}
	return c
}

func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range d.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.records[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("patient document must be a JSON object")
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, _ := tok.(string)

		var rec models.PatientRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("patient %q: %w", id, err)
		}
		doc.Put(id, rec)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = *doc
	return nil
}

// ParseDocument decodes a document, treating empty input as an empty document.
func ParseDocument(data []byte) (*Document, error) {
	doc := NewDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode patient document: %w", err)
	}
	return doc, nil
}
