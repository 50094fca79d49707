package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/internal/llm"
)

// complete runs one chat completion constrained to a JSON schema and
// returns the validated message content.
func (c *Client) complete(ctx context.Context, task, system, user string, schema map[string]any) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.complete.start",
		"req_id", rid,
		"task", task,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"user_len", len(user),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": system},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("llm.complete.http_error",
			"req_id", rid, "task", task, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm.complete.schema_violation",
			"req_id", rid, "task", task, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return content, err
	}

	c.logger.Info("llm.complete.ok",
		"req_id", rid, "task", task,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

// ExtractFields implements llm.FieldExtractor.
func (c *Client) ExtractFields(ctx context.Context, text string) (llm.InvoiceFields, []byte, error) {
	schema := llm.BuildInvoiceJSONSchema()
	raw, err := c.complete(ctx, "invoice_fields", llm.BuildInvoicePrompt(), text, schema)
	if err != nil {
		return llm.InvoiceFields{}, raw, err
	}
	var fields llm.InvoiceFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode invoice fields: %w", err)
	}
	return fields, raw, nil
}

// ExtractTerms implements llm.TermExtractor.
func (c *Client) ExtractTerms(ctx context.Context, text string) (llm.ContractTerms, []byte, error) {
	schema := llm.BuildContractTermsJSONSchema()
	raw, err := c.complete(ctx, "contract_terms", llm.BuildTermsPrompt(), text, schema)
	if err != nil {
		return llm.ContractTerms{}, raw, err
	}
	var terms llm.ContractTerms
	if err := json.Unmarshal(raw, &terms); err != nil {
		return llm.ContractTerms{}, raw, fmt.Errorf("decode contract terms: %w", err)
	}
	return terms, raw, nil
}

// Compare implements llm.Comparator.
func (c *Client) Compare(ctx context.Context, invoiceData json.RawMessage, terms json.RawMessage) (llm.ComparisonResult, error) {
	schema := llm.BuildComparisonJSONSchema()
	user := "Invoice data:\n" + string(invoiceData) + "\n\nContract terms:\n" + string(terms)
	raw, err := c.complete(ctx, "comparison", llm.BuildComparisonPrompt(), user, schema)
	if err != nil {
		return llm.ComparisonResult{}, err
	}
	var result llm.ComparisonResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return llm.ComparisonResult{}, fmt.Errorf("decode comparison result: %w", err)
	}
	return result, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
