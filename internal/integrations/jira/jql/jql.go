// Package jql builds Jira Query Language statements from structured
// clauses and renders them into the textual syntax the search endpoint
// expects, including its escaping rules.
package jql

import "errors"

// ErrUnboundedQuery is returned by Build when neither projects nor
// labels constrain the search. An unconstrained statement would crawl
// every issue on the instance.
var ErrUnboundedQuery = errors.New("this search would cover all projects and labels; supply at least one project or label to narrow it")

// Value is a sealed interface over the value kinds usable inside a
// membership clause. Only String implements it today; numeric, boolean
// and function-call values slot in as new variants without touching
// callers.
type Value interface {
	jqlValue()
}

// String is a text value. It is quoted and escaped on rendering.
type String string

func (String) jqlValue() {}

// Clause is a sealed interface over filter clause kinds. Only And and
// In implement it; OR, equality and CONTAINS would be added here.
type Clause interface {
	jqlClause()
}

// And is an ordered conjunction of clauses.
type And []Clause

func (And) jqlClause() {}

// In restricts a field to one of a fixed set of values.
type In struct {
	Field  string
	Values []Value
}

func (In) jqlClause() {}

// Statement wraps a single root clause. It is immutable once built and
// rendering is a pure function of its structure.
type Statement struct {
	Clause Clause
}

// Strings converts a slice of plain strings into membership values.
func Strings(values []string) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Build assembles the issue-search statement for the given membership
// filters. Clauses appear in a fixed order (project, labels, issuetype)
// so rendering is deterministic; empty filters are omitted. Issue types
// alone do not bound the search, so Build fails with ErrUnboundedQuery
// unless at least one project or label is given.
func Build(projects, labels, issueTypes []string) (*Statement, error) {
	if len(projects) == 0 && len(labels) == 0 {
		return nil, ErrUnboundedQuery
	}

	var clauses And
	if len(projects) > 0 {
		clauses = append(clauses, In{Field: "project", Values: Strings(projects)})
	}
	if len(labels) > 0 {
		clauses = append(clauses, In{Field: "labels", Values: Strings(labels)})
	}
	if len(issueTypes) > 0 {
		clauses = append(clauses, In{Field: "issuetype", Values: Strings(issueTypes)})
	}

	return &Statement{Clause: clauses}, nil
}
