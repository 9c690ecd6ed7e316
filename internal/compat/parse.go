package compat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
)

// ErrMalformedBuild means the model output is not a build of the expected shape.
var ErrMalformedBuild = errors.New("malformed build")

// ParseBuild decodes model output into a Build. Every property of the response schema must be
// present and non-null, and every category object needs a non-empty id.
func ParseBuild(raw []byte) (*model.Build, error) {
	raw = bytes.TrimSpace(stripCodeFence(raw))

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBuild, err)
	}

	for _, cat := range model.Categories {
		key := cat.BuildKey()
		obj, err := requireKey(top, key, "")
		if err != nil {
			return nil, err
		}
		var sel map[string]json.RawMessage
		if err := json.Unmarshal(obj, &sel); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedBuild, key, err)
		}
		for _, f := range append(categoryFields(cat), field{name: "advantage"}) {
			if _, err := requireKey(sel, f.name, key); err != nil {
				return nil, err
			}
		}
		var id string
		if err := json.Unmarshal(sel["id"], &id); err != nil || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: %q has no id", ErrMalformedBuild, key)
		}
	}
	for _, key := range []string{"totalPrice", "totalScore", "reasoning"} {
		if _, err := requireKey(top, key, ""); err != nil {
			return nil, err
		}
	}

	var build model.Build
	if err := json.Unmarshal(raw, &build); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBuild, err)
	}
	return &build, nil
}

// requireKey returns the raw value of key, failing when it is absent or null.
func requireKey(obj map[string]json.RawMessage, key, parent string) (json.RawMessage, error) {
	name := key
	if parent != "" {
		name = parent + "." + key
	}
	v, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedBuild, name)
	}
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, fmt.Errorf("%w: %q is null", ErrMalformedBuild, name)
	}
	return v, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add despite instructions.
func stripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(s)
}
