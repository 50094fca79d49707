// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/docuflow/invoice-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ContractUpdate) SetVendorName(v string) *ContractUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableVendorName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ContractUpdate) SetFilePath(v string) *ContractUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFilePath(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdate) SetStartDate(v time.Time) *ContractUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStartDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ContractUpdate) ClearStartDate() *ContractUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdate) SetEndDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEndDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdate) ClearEndDate() *ContractUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *ContractUpdate) SetKeyTerms(v json.RawMessage) *ContractUpdate {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *ContractUpdate) AppendKeyTerms(v json.RawMessage) *ContractUpdate {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *ContractUpdate) ClearKeyTerms() *ContractUpdate {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ContractUpdate) AddInvoiceIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ContractUpdate) AddInvoices(v ...*Invoice) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ContractUpdate) ClearInvoices() *ContractUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ContractUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ContractUpdate) RemoveInvoices(v ...*Invoice) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := contract.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Contract.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := contract.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Contract.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(contract.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(contract.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(contract.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetVendorName sets the "vendor_name" field.
func (_u *ContractUpdateOne) SetVendorName(v string) *ContractUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableVendorName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ContractUpdateOne) SetFilePath(v string) *ContractUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFilePath(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdateOne) SetStartDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStartDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ContractUpdateOne) ClearStartDate() *ContractUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdateOne) SetEndDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEndDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdateOne) ClearEndDate() *ContractUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *ContractUpdateOne) SetKeyTerms(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *ContractUpdateOne) AppendKeyTerms(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *ContractUpdateOne) ClearKeyTerms() *ContractUpdateOne {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ContractUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ContractUpdateOne) AddInvoices(v ...*Invoice) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ContractUpdateOne) ClearInvoices() *ContractUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ContractUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ContractUpdateOne) RemoveInvoices(v ...*Invoice) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := contract.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Contract.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := contract.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Contract.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(contract.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(contract.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(contract.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(contract.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
