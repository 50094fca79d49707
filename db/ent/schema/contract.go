package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("vendor_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Time("start_date").Optional().Nillable(),
		field.Time("end_date").Optional().Nillable(),
		// Cached summary of extracted terms; refreshed on every validation.
		field.JSON("key_terms", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invoices", Invoice.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor_name"),
	}
}
