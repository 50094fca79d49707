package llm

import "github.com/docuflow/invoice-pipeline/constants"

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the LLM as a structured output constraint
// and also use it locally to validate.
func BuildInvoiceJSONSchema() map[string]any {
	props := map[string]any{
		"vendor_name":    map[string]any{"type": "string", "minLength": 1},
		"invoice_number": map[string]any{"type": "string"},
		"invoice_date":   dateProp(),
		"total_amount":   decimalProp(),
		"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"payment_terms":  map[string]any{"type": "string"},
		"line_items": map[string]any{
			"type":  "array",
			"items": lineItemSchema(),
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"vendor_name", "total_amount"},
	}
}

// BuildContractTermsJSONSchema constrains contract key-term extraction.
func BuildContractTermsJSONSchema() map[string]any {
	props := map[string]any{
		"vendor_name":     map[string]any{"type": "string"},
		"effective_date":  dateProp(),
		"expiration_date": dateProp(),
		"payment_terms":   map[string]any{"type": "string"},
		"pricing_items": map[string]any{
			"type":  "array",
			"items": lineItemSchema(),
		},
		"termination_clauses": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// BuildComparisonJSONSchema constrains the invoice-vs-terms comparison
// result, including the discrepancy taxonomy.
func BuildComparisonJSONSchema() map[string]any {
	discrepancy := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"type":        map[string]any{"type": "string", "enum": constants.DiscrepancyTypes},
			"severity":    map[string]any{"type": "string", "enum": constants.Severities},
			"description": map[string]any{"type": "string", "minLength": 1},
			"field":       map[string]any{"type": "string"},
		},
		"required": []string{"type", "severity", "description"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"is_valid": map[string]any{"type": "boolean"},
			"discrepancies": map[string]any{
				"type":  "array",
				"items": discrepancy,
			},
			"summary": map[string]any{"type": "string"},
		},
		"required": []string{"is_valid", "discrepancies"},
	}
}

func lineItemSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number"},
			"unit_price":  decimalProp(),
			"amount":      decimalProp(),
		},
		"required": []string{"description"},
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}
