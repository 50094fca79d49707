package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("file_name").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
		field.String("status").
			Default(string(constants.StatusReceived)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses...)),
		field.String("vendor_name").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable(),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.JSON("flagged_discrepancies", json.RawMessage{}).Optional(),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}).Optional().Nillable(),
		field.String("approved_by").Optional().Nillable(),
		field.Time("approval_time").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE contract (FK: invoices.contract_id)
		edge.From("contract", Contract.Type).
			Ref("invoices").
			Field("contract_id").
			Unique(),
		// ONE invoice -> MANY audit log entries
		edge.To("audit_logs", AuditLog.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("vendor_name"),
		index.Fields("invoice_number"),
	}
}
