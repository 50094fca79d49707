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
	"github.com/docuflow/invoice-pipeline/gen/ent/auditlog"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/docuflow/invoice-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdate) SetFileName(v string) *InvoiceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceUpdate) SetSourcePath(v string) *InvoiceUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSourcePath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceUpdate) SetUploadedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUploadedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdate) SetVendorName(v string) *InvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *InvoiceUpdate) ClearVendorName() *InvoiceUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdate) ClearTotalAmount() *InvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdate) SetExtractedData(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *InvoiceUpdate) AppendExtractedData(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdate) ClearExtractedData() *InvoiceUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFlaggedDiscrepancies sets the "flagged_discrepancies" field.
func (_u *InvoiceUpdate) SetFlaggedDiscrepancies(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetFlaggedDiscrepancies(v)
	return _u
}

// AppendFlaggedDiscrepancies appends value to the "flagged_discrepancies" field.
func (_u *InvoiceUpdate) AppendFlaggedDiscrepancies(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendFlaggedDiscrepancies(v)
	return _u
}

// ClearFlaggedDiscrepancies clears the value of the "flagged_discrepancies" field.
func (_u *InvoiceUpdate) ClearFlaggedDiscrepancies() *InvoiceUpdate {
	_u.mutation.ClearFlaggedDiscrepancies()
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *InvoiceUpdate) SetContractID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableContractID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *InvoiceUpdate) ClearContractID() *InvoiceUpdate {
	_u.mutation.ClearContractID()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *InvoiceUpdate) SetApprovedBy(v string) *InvoiceUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableApprovedBy(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *InvoiceUpdate) ClearApprovedBy() *InvoiceUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovalTime sets the "approval_time" field.
func (_u *InvoiceUpdate) SetApprovalTime(v time.Time) *InvoiceUpdate {
	_u.mutation.SetApprovalTime(v)
	return _u
}

// SetNillableApprovalTime sets the "approval_time" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableApprovalTime(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetApprovalTime(*v)
	}
	return _u
}

// ClearApprovalTime clears the value of the "approval_time" field.
func (_u *InvoiceUpdate) ClearApprovalTime() *InvoiceUpdate {
	_u.mutation.ClearApprovalTime()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *InvoiceUpdate) SetContract(v *Contract) *InvoiceUpdate {
	return _u.SetContractID(v.ID)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *InvoiceUpdate) AddAuditLogIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *InvoiceUpdate) AddAuditLogs(v ...*AuditLog) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *InvoiceUpdate) ClearContract() *InvoiceUpdate {
	_u.mutation.ClearContract()
	return _u
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *InvoiceUpdate) ClearAuditLogs() *InvoiceUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *InvoiceUpdate) RemoveAuditLogIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *InvoiceUpdate) RemoveAuditLogs(v ...*AuditLog) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoice.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoice.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoice.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(invoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FlaggedDiscrepancies(); ok {
		_spec.SetField(invoice.FieldFlaggedDiscrepancies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlaggedDiscrepancies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldFlaggedDiscrepancies, value)
		})
	}
	if _u.mutation.FlaggedDiscrepanciesCleared() {
		_spec.ClearField(invoice.FieldFlaggedDiscrepancies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(invoice.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(invoice.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalTime(); ok {
		_spec.SetField(invoice.FieldApprovalTime, field.TypeTime, value)
	}
	if _u.mutation.ApprovalTimeCleared() {
		_spec.ClearField(invoice.FieldApprovalTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ContractTable,
			Columns: []string{invoice.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ContractTable,
			Columns: []string{invoice.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdateOne) SetFileName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceUpdateOne) SetSourcePath(v string) *InvoiceUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSourcePath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceUpdateOne) SetUploadedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUploadedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdateOne) SetVendorName(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *InvoiceUpdateOne) ClearVendorName() *InvoiceUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdateOne) ClearTotalAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdateOne) SetExtractedData(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *InvoiceUpdateOne) AppendExtractedData(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdateOne) ClearExtractedData() *InvoiceUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetFlaggedDiscrepancies sets the "flagged_discrepancies" field.
func (_u *InvoiceUpdateOne) SetFlaggedDiscrepancies(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetFlaggedDiscrepancies(v)
	return _u
}

// AppendFlaggedDiscrepancies appends value to the "flagged_discrepancies" field.
func (_u *InvoiceUpdateOne) AppendFlaggedDiscrepancies(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendFlaggedDiscrepancies(v)
	return _u
}

// ClearFlaggedDiscrepancies clears the value of the "flagged_discrepancies" field.
func (_u *InvoiceUpdateOne) ClearFlaggedDiscrepancies() *InvoiceUpdateOne {
	_u.mutation.ClearFlaggedDiscrepancies()
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *InvoiceUpdateOne) SetContractID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableContractID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *InvoiceUpdateOne) ClearContractID() *InvoiceUpdateOne {
	_u.mutation.ClearContractID()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *InvoiceUpdateOne) SetApprovedBy(v string) *InvoiceUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableApprovedBy(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *InvoiceUpdateOne) ClearApprovedBy() *InvoiceUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovalTime sets the "approval_time" field.
func (_u *InvoiceUpdateOne) SetApprovalTime(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetApprovalTime(v)
	return _u
}

// SetNillableApprovalTime sets the "approval_time" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableApprovalTime(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetApprovalTime(*v)
	}
	return _u
}

// ClearApprovalTime clears the value of the "approval_time" field.
func (_u *InvoiceUpdateOne) ClearApprovalTime() *InvoiceUpdateOne {
	_u.mutation.ClearApprovalTime()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *InvoiceUpdateOne) SetContract(v *Contract) *InvoiceUpdateOne {
	return _u.SetContractID(v.ID)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *InvoiceUpdateOne) AddAuditLogIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *InvoiceUpdateOne) AddAuditLogs(v ...*AuditLog) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *InvoiceUpdateOne) ClearContract() *InvoiceUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *InvoiceUpdateOne) ClearAuditLogs() *InvoiceUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *InvoiceUpdateOne) RemoveAuditLogIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *InvoiceUpdateOne) RemoveAuditLogs(v ...*AuditLog) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoice.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoice.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoice.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(invoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FlaggedDiscrepancies(); ok {
		_spec.SetField(invoice.FieldFlaggedDiscrepancies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlaggedDiscrepancies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldFlaggedDiscrepancies, value)
		})
	}
	if _u.mutation.FlaggedDiscrepanciesCleared() {
		_spec.ClearField(invoice.FieldFlaggedDiscrepancies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(invoice.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(invoice.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalTime(); ok {
		_spec.SetField(invoice.FieldApprovalTime, field.TypeTime, value)
	}
	if _u.mutation.ApprovalTimeCleared() {
		_spec.ClearField(invoice.FieldApprovalTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ContractTable,
			Columns: []string{invoice.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ContractTable,
			Columns: []string{invoice.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.AuditLogsTable,
			Columns: []string{invoice.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
