// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "details", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_invoices_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[4]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_invoice_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[1]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "key_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_vendor_name",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[1]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "Received"},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "flagged_discrepancies", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approval_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_contracts_invoices",
				Columns:    []*schema.Column{InvoicesColumns[15]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[4]},
			},
			{
				Name:    "invoice_vendor_name",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[5]},
			},
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[6]},
			},
		},
	}
	// WorkflowRulesColumns holds the columns for the "workflow_rules" table.
	WorkflowRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "condition", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowRulesTable holds the schema information for the "workflow_rules" table.
	WorkflowRulesTable = &schema.Table{
		Name:       "workflow_rules",
		Columns:    WorkflowRulesColumns,
		PrimaryKey: []*schema.Column{WorkflowRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrule_is_active_priority",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRulesColumns[5], WorkflowRulesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ContractsTable,
		InvoicesTable,
		WorkflowRulesTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = InvoicesTable
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ContractsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	WorkflowRulesTable.Annotation = &entsql.Annotation{
		Table: "workflow_rules",
	}
}
