// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/invoice-pipeline/gen/ent/workflowrule"
	"github.com/google/uuid"
)

// WorkflowRuleCreate is the builder for creating a WorkflowRule entity.
type WorkflowRuleCreate struct {
	config
	mutation *WorkflowRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WorkflowRuleCreate) SetName(v string) *WorkflowRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCondition sets the "condition" field.
func (_c *WorkflowRuleCreate) SetCondition(v string) *WorkflowRuleCreate {
	_c.mutation.SetCondition(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *WorkflowRuleCreate) SetAction(v string) *WorkflowRuleCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WorkflowRuleCreate) SetPriority(v int) *WorkflowRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WorkflowRuleCreate) SetNillablePriority(v *int) *WorkflowRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WorkflowRuleCreate) SetIsActive(v bool) *WorkflowRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WorkflowRuleCreate) SetNillableIsActive(v *bool) *WorkflowRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowRuleCreate) SetCreatedAt(v time.Time) *WorkflowRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowRuleCreate) SetNillableCreatedAt(v *time.Time) *WorkflowRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowRuleCreate) SetUpdatedAt(v time.Time) *WorkflowRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowRuleCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowRuleCreate) SetID(v uuid.UUID) *WorkflowRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkflowRuleCreate) SetNillableID(v *uuid.UUID) *WorkflowRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WorkflowRuleMutation object of the builder.
func (_c *WorkflowRuleCreate) Mutation() *WorkflowRuleMutation {
	return _c.mutation
}

// Save creates the WorkflowRule in the database.
func (_c *WorkflowRuleCreate) Save(ctx context.Context) (*WorkflowRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowRuleCreate) SaveX(ctx context.Context) *WorkflowRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowRuleCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := workflowrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := workflowrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workflowrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowRuleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := workflowrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Condition(); !ok {
		return &ValidationError{Name: "condition", err: errors.New(`ent: missing required field "WorkflowRule.condition"`)}
	}
	if v, ok := _c.mutation.Condition(); ok {
		if err := workflowrule.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.condition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "WorkflowRule.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := workflowrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "WorkflowRule.priority"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WorkflowRule.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowRule.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowRuleCreate) sqlSave(ctx context.Context) (*WorkflowRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowRuleCreate) createSpec() (*WorkflowRule, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowrule.Table, sqlgraph.NewFieldSpec(workflowrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Condition(); ok {
		_spec.SetField(workflowrule.FieldCondition, field.TypeString, value)
		_node.Condition = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(workflowrule.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(workflowrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(workflowrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkflowRuleCreateBulk is the builder for creating many WorkflowRule entities in bulk.
type WorkflowRuleCreateBulk struct {
	config
	err      error
	builders []*WorkflowRuleCreate
}

// Save creates the WorkflowRule entities in the database.
func (_c *WorkflowRuleCreateBulk) Save(ctx context.Context) ([]*WorkflowRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowRuleCreateBulk) SaveX(ctx context.Context) []*WorkflowRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
