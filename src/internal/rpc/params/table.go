// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

import (
	"sort"
	"sync"
)

// Table is an immutable set of conversion rules.
//
// A Table is never modified after construction, so a single instance can be
// shared by any number of goroutines without synchronization.
type Table struct{ members map[Rule]struct{} }

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table built from [DefaultRules].
// The table is constructed exactly once, on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(DefaultRules)
	})
	return defaultTable
}

// NewTable builds a table from one or more rule lists.
//
// Duplicate rules collapse silently. Rules with a negative index can never
// match a parameter position and are skipped.
func NewTable(rules ...[]Rule) *Table {
	n := 0
	for _, list := range rules {
		n += len(list)
	}

	t := &Table{members: make(map[Rule]struct{}, n)}
	for _, list := range rules {
		for _, r := range list {
			if r.Index < 0 {
				continue
			}
			t.members[r] = struct{}{}
		}
	}
	return t
}

// With returns a new table holding the rules of t plus extra.
// The receiver is left untouched.
func (t *Table) With(extra []Rule) *Table {
	return NewTable(t.Rules(), extra)
}

// Contains reports whether the parameter at index of method must be parsed
// as JSON. The method name is matched exactly, including case.
//
// Contains is total: unknown methods and unlisted indices report false.
func (t *Table) Contains(method string, index int) bool {
	if t == nil {
		return false
	}
	_, ok := t.members[Rule{Method: method, Index: index}]
	return ok
}

// Len returns the number of distinct rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.members)
}

// Rules returns a copy of the rules ordered by method, then index.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, t.Len())
	if t == nil {
		return out
	}
	for r := range t.members {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Methods returns the sorted names of every method with at least one rule.
func (t *Table) Methods() []string {
	var names []string
	for _, r := range t.Rules() {
		if len(names) == 0 || names[len(names)-1] != r.Method {
			names = append(names, r.Method)
		}
	}
	return names
}

// Indices returns the sorted parameter positions flagged for method,
// or nil when the method has no rules.
func (t *Table) Indices(method string) []int {
	var idx []int
	for _, r := range t.Rules() {
		if r.Method == method {
			idx = append(idx, r.Index)
		}
	}
	return idx
}
