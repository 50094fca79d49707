// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docuflow/invoice-pipeline/db/ent/schema"
	"github.com/docuflow/invoice-pipeline/gen/ent/auditlog"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/docuflow/invoice-pipeline/gen/ent/workflowrule"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTimestamp is the schema descriptor for timestamp field.
	auditlogDescTimestamp := auditlogFields[2].Descriptor()
	// auditlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditlog.DefaultTimestamp = auditlogDescTimestamp.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescVendorName is the schema descriptor for vendor_name field.
	contractDescVendorName := contractFields[1].Descriptor()
	// contract.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	contract.VendorNameValidator = contractDescVendorName.Validators[0].(func(string) error)
	// contractDescFilePath is the schema descriptor for file_path field.
	contractDescFilePath := contractFields[2].Descriptor()
	// contract.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	contract.FilePathValidator = contractDescFilePath.Validators[0].(func(string) error)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[6].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[7].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFileName is the schema descriptor for file_name field.
	invoiceDescFileName := invoiceFields[1].Descriptor()
	// invoice.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	invoice.FileNameValidator = invoiceDescFileName.Validators[0].(func(string) error)
	// invoiceDescSourcePath is the schema descriptor for source_path field.
	invoiceDescSourcePath := invoiceFields[2].Descriptor()
	// invoice.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoice.SourcePathValidator = invoiceDescSourcePath.Validators[0].(func(string) error)
	// invoiceDescUploadedAt is the schema descriptor for uploaded_at field.
	invoiceDescUploadedAt := invoiceFields[3].Descriptor()
	// invoice.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoice.DefaultUploadedAt = invoiceDescUploadedAt.Default.(func() time.Time)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[4].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[14].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[15].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	workflowruleFields := schema.WorkflowRule{}.Fields()
	_ = workflowruleFields
	// workflowruleDescName is the schema descriptor for name field.
	workflowruleDescName := workflowruleFields[1].Descriptor()
	// workflowrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowrule.NameValidator = workflowruleDescName.Validators[0].(func(string) error)
	// workflowruleDescCondition is the schema descriptor for condition field.
	workflowruleDescCondition := workflowruleFields[2].Descriptor()
	// workflowrule.ConditionValidator is a validator for the "condition" field. It is called by the builders before save.
	workflowrule.ConditionValidator = workflowruleDescCondition.Validators[0].(func(string) error)
	// workflowruleDescAction is the schema descriptor for action field.
	workflowruleDescAction := workflowruleFields[3].Descriptor()
	// workflowrule.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	workflowrule.ActionValidator = func() func(string) error {
		validators := workflowruleDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowruleDescPriority is the schema descriptor for priority field.
	workflowruleDescPriority := workflowruleFields[4].Descriptor()
	// workflowrule.DefaultPriority holds the default value on creation for the priority field.
	workflowrule.DefaultPriority = workflowruleDescPriority.Default.(int)
	// workflowruleDescIsActive is the schema descriptor for is_active field.
	workflowruleDescIsActive := workflowruleFields[5].Descriptor()
	// workflowrule.DefaultIsActive holds the default value on creation for the is_active field.
	workflowrule.DefaultIsActive = workflowruleDescIsActive.Default.(bool)
	// workflowruleDescCreatedAt is the schema descriptor for created_at field.
	workflowruleDescCreatedAt := workflowruleFields[6].Descriptor()
	// workflowrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrule.DefaultCreatedAt = workflowruleDescCreatedAt.Default.(func() time.Time)
	// workflowruleDescUpdatedAt is the schema descriptor for updated_at field.
	workflowruleDescUpdatedAt := workflowruleFields[7].Descriptor()
	// workflowrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowrule.DefaultUpdatedAt = workflowruleDescUpdatedAt.Default.(func() time.Time)
	// workflowrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowrule.UpdateDefaultUpdatedAt = workflowruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowruleDescID is the schema descriptor for id field.
	workflowruleDescID := workflowruleFields[0].Descriptor()
	// workflowrule.DefaultID holds the default value on creation for the id field.
	workflowrule.DefaultID = workflowruleDescID.Default.(func() uuid.UUID)
}
