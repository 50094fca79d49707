// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/invoice-pipeline/gen/ent/predicate"
	"github.com/docuflow/invoice-pipeline/gen/ent/workflowrule"
)

// WorkflowRuleUpdate is the builder for updating WorkflowRule entities.
type WorkflowRuleUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRuleMutation
}

// Where appends a list predicates to the WorkflowRuleUpdate builder.
func (_u *WorkflowRuleUpdate) Where(ps ...predicate.WorkflowRule) *WorkflowRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowRuleUpdate) SetName(v string) *WorkflowRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillableName(v *string) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *WorkflowRuleUpdate) SetCondition(v string) *WorkflowRuleUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillableCondition(v *string) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *WorkflowRuleUpdate) SetAction(v string) *WorkflowRuleUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillableAction(v *string) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkflowRuleUpdate) SetPriority(v int) *WorkflowRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillablePriority(v *int) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkflowRuleUpdate) AddPriority(v int) *WorkflowRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WorkflowRuleUpdate) SetIsActive(v bool) *WorkflowRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillableIsActive(v *bool) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRuleUpdate) SetCreatedAt(v time.Time) *WorkflowRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRuleUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRuleUpdate) SetUpdatedAt(v time.Time) *WorkflowRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowRuleMutation object of the builder.
func (_u *WorkflowRuleUpdate) Mutation() *WorkflowRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := workflowrule.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := workflowrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.action": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrule.Table, workflowrule.Columns, sqlgraph.NewFieldSpec(workflowrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(workflowrule.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(workflowrule.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workflowrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workflowrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(workflowrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRuleUpdateOne is the builder for updating a single WorkflowRule entity.
type WorkflowRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRuleMutation
}

// SetName sets the "name" field.
func (_u *WorkflowRuleUpdateOne) SetName(v string) *WorkflowRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillableName(v *string) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *WorkflowRuleUpdateOne) SetCondition(v string) *WorkflowRuleUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillableCondition(v *string) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *WorkflowRuleUpdateOne) SetAction(v string) *WorkflowRuleUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillableAction(v *string) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkflowRuleUpdateOne) SetPriority(v int) *WorkflowRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillablePriority(v *int) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkflowRuleUpdateOne) AddPriority(v int) *WorkflowRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WorkflowRuleUpdateOne) SetIsActive(v bool) *WorkflowRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillableIsActive(v *bool) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowRuleUpdateOne) SetCreatedAt(v time.Time) *WorkflowRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRuleUpdateOne) SetUpdatedAt(v time.Time) *WorkflowRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowRuleMutation object of the builder.
func (_u *WorkflowRuleUpdateOne) Mutation() *WorkflowRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowRuleUpdate builder.
func (_u *WorkflowRuleUpdateOne) Where(ps ...predicate.WorkflowRule) *WorkflowRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRuleUpdateOne) Select(field string, fields ...string) *WorkflowRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRule entity.
func (_u *WorkflowRuleUpdateOne) Save(ctx context.Context) (*WorkflowRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRuleUpdateOne) SaveX(ctx context.Context) *WorkflowRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflowrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Condition(); ok {
		if err := workflowrule.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := workflowrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "WorkflowRule.action": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRuleUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrule.Table, workflowrule.Columns, sqlgraph.NewFieldSpec(workflowrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrule.FieldID)
		for _, f := range fields {
			if !workflowrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(workflowrule.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(workflowrule.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workflowrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workflowrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(workflowrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
