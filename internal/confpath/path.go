// Package confpath implements dotted-path access into configuration
// trees. A tree is any nesting of map[string]any mappings, []any
// sequences and scalar values, as produced by decoding JSON into any.
//
// A path like "general.fonts.0" addresses one node: string segments
// index mappings, numeric segments index sequences. Every failure mode
// (missing key, index out of range, non-numeric segment over a
// sequence, descending into a scalar) reports ErrPathNotFound so
// callers can treat "key absent" uniformly.
package confpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator joins path segments.
const Separator = "."

// ErrPathNotFound reports that a dotted path does not resolve against
// a tree. All lookup failures wrap this sentinel.
var ErrPathNotFound = errors.New("config path not found")

func notFound(path, reason string) error {
	return fmt.Errorf("%w: %q (%s)", ErrPathNotFound, path, reason)
}

// split validates and splits a path into segments.
// Empty paths and empty segments are lookup failures, not panics.
func split(path string) ([]string, error) {
	if path == "" {
		return nil, notFound(path, "empty path")
	}
	segs := strings.Split(path, Separator)
	for _, s := range segs {
		if s == "" {
			return nil, notFound(path, "empty segment")
		}
	}
	return segs, nil
}

// step descends one level from node using segment.
func step(node any, segment, path string) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[segment]
		if !ok {
			return nil, notFound(path, "missing key "+strconv.Quote(segment))
		}
		return child, nil
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return nil, notFound(path, "segment "+strconv.Quote(segment)+" is not an index")
		}
		if idx < 0 || idx >= len(n) {
			return nil, notFound(path, "index "+segment+" out of range")
		}
		return n[idx], nil
	default:
		return nil, notFound(path, "segment "+strconv.Quote(segment)+" addresses a scalar")
	}
}

// Resolve walks path from root and returns the addressed node.
func Resolve(root any, path string) (any, error) {
	segs, err := split(path)
	if err != nil {
		return nil, err
	}
	node := root
	for _, seg := range segs {
		node, err = step(node, seg, path)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// Contains reports whether path resolves against root.
func Contains(root any, path string) bool {
	_, err := Resolve(root, path)
	return err == nil
}

// Assign sets the node at path to value, overwriting any prior value.
// Missing intermediate containers are created as empty mappings.
// Sequences are never auto-extended: a numeric segment over a sequence
// must be in range, for intermediates and for the final segment alike.
func Assign(root map[string]any, path string, value any) error {
	segs, err := split(path)
	if err != nil {
		return err
	}
	var node any = root
	for _, seg := range segs[:len(segs)-1] {
		switch n := node.(type) {
		case map[string]any:
			child, ok := n[seg]
			if !ok {
				child = map[string]any{}
				n[seg] = child
			}
			node = child
		case []any:
			node, err = step(n, seg, path)
			if err != nil {
				return err
			}
		default:
			return notFound(path, "segment "+strconv.Quote(seg)+" addresses a scalar")
		}
	}

	last := segs[len(segs)-1]
	switch n := node.(type) {
	case map[string]any:
		n[last] = value
		return nil
	case []any:
		idx, err := strconv.Atoi(last)
		if err != nil {
			return notFound(path, "segment "+strconv.Quote(last)+" is not an index")
		}
		if idx < 0 || idx >= len(n) {
			return notFound(path, "index "+last+" out of range")
		}
		n[idx] = value
		return nil
	default:
		return notFound(path, "segment "+strconv.Quote(last)+" addresses a scalar")
	}
}

// Remove deletes the node at path and returns it. Unlike Resolve, a
// missing intermediate is not an error: Remove reports (nil, false)
// and leaves the tree untouched. Removing a sequence element shifts
// the elements after it down by one.
func Remove(root map[string]any, path string) (any, bool) {
	segs, err := split(path)
	if err != nil {
		return nil, false
	}
	var node any = root
	for _, seg := range segs[:len(segs)-1] {
		node, err = step(node, seg, path)
		if err != nil {
			return nil, false
		}
	}

	last := segs[len(segs)-1]
	switch n := node.(type) {
	case map[string]any:
		removed, ok := n[last]
		if !ok {
			return nil, false
		}
		delete(n, last)
		return removed, true
	case []any:
		// Sequence containers are held by their parent, so re-walk to
		// the parent and replace the shortened slice in place.
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, false
		}
		removed := n[idx]
		shorter := append(append([]any{}, n[:idx]...), n[idx+1:]...)
		parentPath := strings.Join(segs[:len(segs)-1], Separator)
		if err := Assign(root, parentPath, shorter); err != nil {
			return nil, false
		}
		return removed, true
	default:
		return nil, false
	}
}
