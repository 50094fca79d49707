// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// WorkflowRule is the predicate function for workflowrule builders.
type WorkflowRule func(*sql.Selector)
