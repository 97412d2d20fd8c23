// Package seed bulk-loads patient documents into any configured store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"healthdesk/internal/store"
	"healthdesk/internal/validation"
)

// Result counts what a load did to the stored document.
type Result struct {
	Added    int
	Replaced int
	Total    int
}

// ReadFile parses a patient document file. Every entry is validated and its
// bmi and verdict recomputed, so stale derived values in the file are dropped.
func ReadFile(path string) (*store.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*store.Document, error) {
	raw, err := store.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	doc := store.NewDocument()
	var errs []error
	for _, p := range raw.Patients() {
		if err := validation.CheckPatient(p); err != nil {
			errs = append(errs, fmt.Errorf("patient %q: %w", p.ID, err))
			continue
		}
		doc.Put(p.ID, p.Record())
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load writes incoming into s. With replace the stored document is
// discarded; otherwise incoming ids overwrite matching entries in place and
// new ids are appended. The loaded document itself is never modified.
func Load(ctx context.Context, s store.DocumentStore, incoming *store.Document, replace bool) (Result, error) {
	target := store.NewDocument()
	if !replace {
		existing, err := s.Load(ctx)
		if err != nil {
			return Result{}, err
		}
		target = existing.Clone()
	}

	var res Result
	for _, p := range incoming.Patients() {
		if target.Has(p.ID) {
			res.Replaced++
		} else {
			res.Added++
		}
		rec, _ := incoming.Get(p.ID)
		target.Put(p.ID, rec)
	}
	if err := s.Save(ctx, target); err != nil {
		return Result{}, err
	}
	res.Total = target.Len()
	return res, nil
}

// Clear empties the store and returns how many patients were removed.
func Clear(ctx context.Context, s store.DocumentStore) (int, error) {
	existing, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.Save(ctx, store.NewDocument()); err != nil {
		return 0, err
	}
	return existing.Len(), nil
}
