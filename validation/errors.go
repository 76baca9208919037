// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// RootPath is where failures that belong to no single field are reported.
const RootPath = "_root"

// FieldErrors maps a JSON field path ("items[0].quantity", "bvn") to the message shown
// beneath that field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, p+": "+e[p])
	}
	return strings.Join(parts, "; ")
}

// Only keeps the failures on the given fields and anything nested below them.
// It returns nil when nothing is left.
func (e FieldErrors) Only(fields ...string) FieldErrors {
	var out FieldErrors
	for path, msg := range e {
		for _, f := range fields {
			if path == f || strings.HasPrefix(path, f+".") || strings.HasPrefix(path, f+"[") {
				if out == nil {
					out = FieldErrors{}
				}
				out[path] = msg
				break
			}
		}
	}
	return out
}

// add combines several failures on one path into a single banner message.
func (e FieldErrors) add(path, msg string) {
	existing, ok := e[path]
	if !ok {
		e[path] = msg
		return
	}
	if strings.Contains(existing, msg) {
		return
	}
	e[path] = existing + ". " + msg
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var indexRegex = regexp.MustCompile(`\[\d+\]`)

// messageKey turns "items[3].quantity" into "items.quantity".
func messageKey(path string) string {
	return indexRegex.ReplaceAllString(path, "")
}
