// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// FlaggedDiscrepancies holds the value of the "flagged_discrepancies" field.
	FlaggedDiscrepancies json.RawMessage `json:"flagged_discrepancies,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// ApprovalTime holds the value of the "approval_time" field.
	ApprovalTime *time.Time `json:"approval_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[1] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldContractID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.FieldExtractedData, invoice.FieldFlaggedDiscrepancies:
			values[i] = new([]byte)
		case invoice.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldFileName, invoice.FieldSourcePath, invoice.FieldStatus, invoice.FieldVendorName, invoice.FieldInvoiceNumber, invoice.FieldApprovedBy:
			values[i] = new(sql.NullString)
		case invoice.FieldUploadedAt, invoice.FieldInvoiceDate, invoice.FieldApprovalTime, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case invoice.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case invoice.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case invoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoice.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case invoice.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case invoice.FieldFlaggedDiscrepancies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flagged_discrepancies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FlaggedDiscrepancies); err != nil {
					return fmt.Errorf("unmarshal field flagged_discrepancies: %w", err)
				}
			}
		case invoice.FieldContractID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value.Valid {
				_m.ContractID = new(uuid.UUID)
				*_m.ContractID = *value.S.(*uuid.UUID)
			}
		case invoice.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case invoice.FieldApprovalTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approval_time", values[i])
			} else if value.Valid {
				_m.ApprovalTime = new(time.Time)
				*_m.ApprovalTime = value.Time
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the Invoice entity.
func (_m *Invoice) QueryContract() *ContractQuery {
	return NewInvoiceClient(_m.config).QueryContract(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the Invoice entity.
func (_m *Invoice) QueryAuditLogs() *AuditLogQuery {
	return NewInvoiceClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("flagged_discrepancies=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlaggedDiscrepancies))
	builder.WriteString(", ")
	if v := _m.ContractID; v != nil {
		builder.WriteString("contract_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovalTime; v != nil {
		builder.WriteString("approval_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
