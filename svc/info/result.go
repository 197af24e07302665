// Copyright 2026 NetApp, Inc. All Rights Reserved.

package info

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the outcome of a gather run. It marshals to a flat mapping: the category result keys
// sit next to changed, failed, msg and warnings.
type Result struct {
	Changed  bool
	Failed   bool
	Msg      string
	Warnings []string

	info map[string]interface{}
	keys []string
}

func NewResult() *Result {
	return &Result{info: make(map[string]interface{})}
}

// Set stores the objects gathered for a result key, remembering insertion order.
func (r *Result) Set(key string, value interface{}) {
	if _, ok := r.info[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.info[key] = value
}

// Get returns the objects stored under a result key.
func (r *Result) Get(key string) (interface{}, bool) {
	value, ok := r.info[key]
	return value, ok
}

// Keys returns the result keys in the order they were gathered.
func (r *Result) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Info returns a copy of the gathered categories, keyed by result key.
func (r *Result) Info() map[string]interface{} {
	info := make(map[string]interface{}, len(r.info))
	for k, v := range r.info {
		info[k] = v
	}
	return info
}

// AddWarning records a non-fatal condition.
func (r *Result) AddWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Fail marks the result failed and returns err for convenience.
func (r *Result) Fail(err error) (*Result, error) {
	r.Failed = true
	r.Msg = err.Error()
	return r, err
}

// MarshalJSON writes the result keys in the order they were gathered, followed by changed,
// failed, msg and warnings.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, value interface{}) error {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("could not marshal %s; %w", key, err)
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(key)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(encoded)
		return nil
	}

	for _, key := range r.keys {
		if err := writeField(key, r.info[key]); err != nil {
			return nil, err
		}
	}
	if err := writeField("changed", r.Changed); err != nil {
		return nil, err
	}
	if r.Failed {
		if err := writeField("failed", true); err != nil {
			return nil, err
		}
	}
	if r.Msg != "" {
		if err := writeField("msg", r.Msg); err != nil {
			return nil, err
		}
	}
	if len(r.Warnings) > 0 {
		if err := writeField("warnings", r.Warnings); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
