package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

type WorkflowRule struct{ ent.Schema }

func (WorkflowRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_rules"},
	}
}

func (WorkflowRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// Condition string in the rule language, e.g. "Amount > 1000".
		field.String("condition").NotEmpty(),
		field.String("action").NotEmpty().
			Validate(utils.EnumValidator(constants.WorkflowActions...)),
		field.Int("priority").Default(0),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (WorkflowRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active", "priority"),
	}
}
