package rules

import (
	"errors"
	"math"
	"testing"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/entity"
)

func rule(name, condition string, action constants.WorkflowAction, priority int) *entity.WorkflowRule {
	return &entity.WorkflowRule{
		Name:      name,
		Condition: condition,
		Action:    action,
		Priority:  priority,
		IsActive:  true,
	}
}

func TestSelectEmptyRuleSet(t *testing.T) {
	for _, snapshot := range [][]*entity.WorkflowRule{nil, {}} {
		d := Select(Facts{Status: "Validated", Amount: 100}, snapshot)
		if d.Action != constants.ActionRequireReview {
			t.Errorf("action = %s, want RequireReview", d.Action)
		}
		if d.Reason != "No workflow rules defined" {
			t.Errorf("reason = %q", d.Reason)
		}
	}
}

func TestSelectNoMatch(t *testing.T) {
	snapshot := []*entity.WorkflowRule{
		rule("big", "Amount > 1000", constants.ActionRequireManagerApproval, 10),
	}
	d := Select(Facts{Status: "Validated", Amount: 500}, snapshot)
	if d.Action != constants.ActionRequireReview {
		t.Errorf("action = %s, want RequireReview", d.Action)
	}
	if d.Reason != "No matching workflow rules" {
		t.Errorf("reason = %q", d.Reason)
	}
	if d.MatchedRule != "" {
		t.Errorf("matched rule = %q, want none", d.MatchedRule)
	}
}

func TestSelectPriorityOrdering(t *testing.T) {
	// Lower-priority rule listed first; higher priority must still win.
	snapshot := []*entity.WorkflowRule{
		rule("low", "true", constants.ActionRequireReview, 90),
		rule("high", "true", constants.ActionAutoApprove, 100),
	}
	d := Select(Facts{Status: "Validated", Amount: 10}, snapshot)
	if d.MatchedRule != "high" {
		t.Errorf("matched = %q, want high", d.MatchedRule)
	}
	if d.Action != constants.ActionAutoApprove {
		t.Errorf("action = %s, want AutoApprove", d.Action)
	}
}

func TestSelectFirstMatchOnEqualPriority(t *testing.T) {
	snapshot := []*entity.WorkflowRule{
		rule("first", "true", constants.ActionAutoApprove, 50),
		rule("second", "true", constants.ActionRequireManagerApproval, 50),
	}
	d := Select(Facts{Status: "Validated"}, snapshot)
	if d.MatchedRule != "first" {
		t.Errorf("matched = %q, want first (stable tie-break)", d.MatchedRule)
	}
}

func TestSelectSkipsInactiveRules(t *testing.T) {
	inactive := rule("off", "true", constants.ActionAutoApprove, 100)
	inactive.IsActive = false
	snapshot := []*entity.WorkflowRule{
		inactive,
		rule("on", "true", constants.ActionRequireReview, 0),
	}
	d := Select(Facts{Status: "Validated"}, snapshot)
	if d.MatchedRule != "on" {
		t.Errorf("matched = %q, want on", d.MatchedRule)
	}
}

func TestSelectDeterministic(t *testing.T) {
	snapshot := DefaultRules()
	facts := Facts{Status: "Flagged", Amount: 2500, DiscrepancyCount: 1, VendorName: "Acme Corp"}
	first := Select(facts, snapshot)
	for i := 0; i < 10; i++ {
		d := Select(facts, snapshot)
		if d.MatchedRule != first.MatchedRule || d.Action != first.Action {
			t.Fatalf("run %d: decision changed: %+v vs %+v", i, d, first)
		}
	}
}

func TestSelectMalformedFacts(t *testing.T) {
	d := Select(Facts{Status: "Validated", Amount: math.NaN()}, DefaultRules())
	if d.Action != constants.ActionRequireReview {
		t.Errorf("action = %s, want RequireReview", d.Action)
	}
	if !errors.Is(d.Err, ErrMalformedFacts) {
		t.Errorf("err = %v, want ErrMalformedFacts", d.Err)
	}
}

func TestEvalConditionAtoms(t *testing.T) {
	tests := []struct {
		condition string
		facts     Facts
		want      bool
	}{
		{"IsFlagged", Facts{Status: "Flagged"}, true},
		{"IsFlagged", Facts{Status: "Validated"}, false},
		{"IsValidated", Facts{Status: "Validated"}, true},
		{"true", Facts{}, true},
		{"Amount > 1000", Facts{Amount: 1500}, true},
		{"Amount > 1000", Facts{Amount: 1000}, false},
		{"Amount >= 1000", Facts{Amount: 1000}, true},
		{"Amount < 1000", Facts{Amount: 999.99}, true},
		{"Amount <= 1000", Facts{Amount: 1000.01}, false},
		{"Amount == 42.50", Facts{Amount: 42.5}, true},
		{"Amount != 42.50", Facts{Amount: 42.5}, false},
		{"DiscrepancyCount > 0", Facts{DiscrepancyCount: 1}, true},
		{"DiscrepancyCount == 0", Facts{DiscrepancyCount: 0}, true},
		{"DiscrepancyCount >= 3", Facts{DiscrepancyCount: 2}, false},
		{"Vendor == 'Acme Corp'", Facts{VendorName: "Acme Corp"}, true},
		{`Vendor == "Acme Corp"`, Facts{VendorName: "Acme Corp"}, true},
		{"Vendor == 'Acme Corp'", Facts{VendorName: "Acme"}, false},
		// Unrecognized forms are fail-closed.
		{"Amount ~ 100", Facts{Amount: 100}, false},
		{"Vendorish == 'x'", Facts{VendorName: "x"}, false},
		{"", Facts{}, false},
		{"TRUE", Facts{}, false},
	}
	for _, tt := range tests {
		if got := evalCondition(tt.condition, tt.facts); got != tt.want {
			t.Errorf("evalCondition(%q, %+v) = %v, want %v", tt.condition, tt.facts, got, tt.want)
		}
	}
}

func TestEvalConditionCombinators(t *testing.T) {
	tests := []struct {
		condition string
		facts     Facts
		want      bool
	}{
		{"Amount > 1000 AND Vendor == 'Acme Corp'", Facts{Amount: 1500, VendorName: "Acme Corp"}, true},
		{"Amount > 1000 AND Vendor == 'Acme Corp'", Facts{Amount: 500, VendorName: "Acme Corp"}, false},
		{"Amount > 1000 AND Vendor == 'Acme Corp'", Facts{Amount: 1500, VendorName: "Globex"}, false},
		{"IsFlagged OR Amount >= 5000", Facts{Status: "Validated", Amount: 5000}, true},
		{"IsFlagged OR Amount >= 5000", Facts{Status: "Flagged", Amount: 10}, true},
		{"IsFlagged OR Amount >= 5000", Facts{Status: "Validated", Amount: 10}, false},
		{"IsValidated AND Amount < 1000", Facts{Status: "Validated", Amount: 500}, true},
		{"IsValidated AND Amount < 1000", Facts{Status: "Flagged", Amount: 500}, false},
	}
	for _, tt := range tests {
		if got := evalCondition(tt.condition, tt.facts); got != tt.want {
			t.Errorf("evalCondition(%q, %+v) = %v, want %v", tt.condition, tt.facts, got, tt.want)
		}
	}
}

func TestDefaultRulesDecisions(t *testing.T) {
	snapshot := DefaultRules()

	d := Select(Facts{Status: "Validated", Amount: 500}, snapshot)
	if d.Action != constants.ActionAutoApprove {
		t.Errorf("small validated invoice: action = %s, want AutoApprove", d.Action)
	}

	d = Select(Facts{Status: "Flagged", Amount: 1500, DiscrepancyCount: 1}, snapshot)
	if d.Action != constants.ActionRequireManagerApproval {
		t.Errorf("flagged invoice: action = %s, want RequireManagerApproval", d.Action)
	}

	d = Select(Facts{Status: "Validated", Amount: 2500}, snapshot)
	if d.Action != constants.ActionRequireManagerApproval {
		t.Errorf("large validated invoice: action = %s, want RequireManagerApproval", d.Action)
	}

	// Catch-all rule keeps the engine from ever returning no-match here.
	d = Select(Facts{Status: "OCRd", Amount: 10}, snapshot)
	if d.Action != constants.ActionRequireReview || d.MatchedRule != "Default Rule" {
		t.Errorf("fallback: got %+v", d)
	}
}
