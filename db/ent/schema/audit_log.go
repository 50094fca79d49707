package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AuditLog rows are append-only; nothing in the codebase updates or
// deletes them.
type AuditLog struct{ ent.Schema }

func (AuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_logs"},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("invoice_id", uuid.UUID{}),
		field.Time("timestamp").Default(time.Now).Immutable(),
		field.String("action").NotEmpty().Immutable(),
		field.String("details").Optional().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("audit_logs").
			Field("invoice_id").
			Unique().
			Required(),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "timestamp"),
	}
}
