// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/google/uuid"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetVendorName sets the "vendor_name" field.
func (_c *ContractCreate) SetVendorName(v string) *ContractCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ContractCreate) SetFilePath(v string) *ContractCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ContractCreate) SetStartDate(v time.Time) *ContractCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableStartDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ContractCreate) SetEndDate(v time.Time) *ContractCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableEndDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetKeyTerms sets the "key_terms" field.
func (_c *ContractCreate) SetKeyTerms(v json.RawMessage) *ContractCreate {
	_c.mutation.SetKeyTerms(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *ContractCreate) AddInvoiceIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *ContractCreate) AddInvoices(v ...*Invoice) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "Contract.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := contract.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Contract.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Contract.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := contract.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Contract.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.KeyTerms(); ok {
		_spec.SetField(contract.FieldKeyTerms, field.TypeJSON, value)
		_node.KeyTerms = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.InvoicesTable,
			Columns: []string{contract.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
