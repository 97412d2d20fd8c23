// Package validation turns untyped request bodies into typed records. Each
// field has its own check; a collector gathers every violation so callers see
// all of them at once instead of the first one only.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawInput is a decoded JSON object as submitted by a caller.
type RawInput map[string]any

// DecodeRawInput decodes a JSON object, keeping numbers as json.Number so
// integers and floats can be told apart.
func DecodeRawInput(body []byte) (RawInput, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw RawInput
	if err := decoder.Decode(&raw); err != nil {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "invalid JSON: " + err.Error()}}}
	}
	if raw == nil {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "unexpected data after JSON object"}}}
	}
	return raw, nil
}

type FieldError struct {
	Field   string `json:"field" example:"age"`
	Message string `json:"message" example:"must be greater than 0"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the fields that failed, in reporting order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

type collector struct {
	errs []FieldError
}

func (c *collector) add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

func (c *collector) ok() bool {
	return len(c.errs) == 0
}

func (c *collector) err() error {
	if c.ok() {
		return nil
	}
	return &ValidationError{Errors: c.errs}
}

// rejectUnknown reports keys outside allowed. ignored keys are dropped silently.
func (c *collector) rejectUnknown(raw RawInput, allowed []string, ignored ...string) {
	known := make(map[string]struct{}, len(allowed)+len(ignored))
	for _, k := range allowed {
		known[k] = struct{}{}
	}
	for _, k := range ignored {
		known[k] = struct{}{}
	}

	var unknown []string
	for k := range raw {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		c.add(k, "extra field not permitted")
	}
}

// required runs check on a mandatory field.
func required[T any](c *collector, raw RawInput, field string, check func(any) (T, error)) (T, bool) {
	var zero T
	v, ok := raw[field]
	if !ok || v == nil {
		c.add(field, "field required")
		return zero, false
	}
	out, err := check(v)
	if err != nil {
		c.add(field, err.Error())
		return zero, false
	}
	return out, true
}

// optional runs check on a field that may be absent. Absent and null both
// yield nil.
func optional[T any](c *collector, raw RawInput, field string, check func(any) (T, error)) *T {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil
	}
	out, err := check(v)
	if err != nil {
		c.add(field, err.Error())
		return nil
	}
	return &out
}

var (
	errNotNumber  = errors.New("must be a number")
	errNotInteger = errors.New("must be a whole number")
	errNotBool    = errors.New("must be a boolean")
	errNotString  = errors.New("must be a string")
	errEmpty      = errors.New("must not be empty")
)

func toFloat(v any, strict bool) (float64, error) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		if strict {
			return 0, errNotNumber
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	default:
		return 0, errNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	return f, nil
}

func toInt(v any) (int, error) {
	f, err := toFloat(v, false)
	if err != nil {
		return 0, errNotInteger
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, errNotInteger
	}
	return int(f), nil
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, errNotBool
		}
		return b, nil
	case json.Number:
		switch t.String() {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
	}
	return false, errNotBool
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errNotString
	}
	return s, nil
}

func oneOf(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
}

func greaterThanZero(f float64) error {
	if f <= 0 {
		return errors.New("must be greater than 0")
	}
	return nil
}
