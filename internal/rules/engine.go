package rules

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/entity"
)

// ErrMalformedFacts reports an unusable fact set; evaluation degrades to
// the safe default instead of failing the caller.
var ErrMalformedFacts = errors.New("malformed rule facts")

// Facts is the input to rule evaluation.
type Facts struct {
	Status           string
	Amount           float64
	DiscrepancyCount int
	VendorName       string
}

// Decision is the outcome of rule selection. Err is non-nil only when the
// facts were malformed; Action is always usable.
type Decision struct {
	Action      constants.WorkflowAction
	MatchedRule string
	Reason      string
	Err         error
}

// Anchored atom forms. Anything that matches none of them evaluates false.
var (
	amountRe      = regexp.MustCompile(`^Amount\s*(>=|<=|==|!=|>|<)\s*(\d+(\.\d+)?)$`)
	discrepancyRe = regexp.MustCompile(`^DiscrepancyCount\s*(>=|<=|==|!=|>|<)\s*(\d+)$`)
	vendorRe      = regexp.MustCompile(`^Vendor\s*==\s*['"](.+)['"]$`)
)

// Select evaluates rules against facts and picks the first active rule
// whose condition holds, in priority-descending order (snapshot order
// breaks ties). Nil or empty rule sets, and fact sets the engine cannot
// interpret, fall back to RequireReview.
func Select(facts Facts, snapshot []*entity.WorkflowRule) Decision {
	if err := checkFacts(facts); err != nil {
		return Decision{
			Action: constants.ActionRequireReview,
			Reason: "Facts could not be evaluated",
			Err:    err,
		}
	}

	if len(snapshot) == 0 {
		return Decision{
			Action: constants.ActionRequireReview,
			Reason: "No workflow rules defined",
		}
	}

	// Work on a copy; the snapshot belongs to the caller.
	ordered := make([]*entity.WorkflowRule, len(snapshot))
	copy(ordered, snapshot)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, rule := range ordered {
		if !rule.IsActive || rule.Condition == "" || rule.Action == "" {
			continue
		}
		if evalCondition(rule.Condition, facts) {
			return Decision{
				Action:      rule.Action,
				MatchedRule: rule.Name,
				Reason:      fmt.Sprintf("Rule '%s' condition met: %s", rule.Name, rule.Condition),
			}
		}
	}

	return Decision{
		Action: constants.ActionRequireReview,
		Reason: "No matching workflow rules",
	}
}

func checkFacts(f Facts) error {
	if math.IsNaN(f.Amount) || math.IsInf(f.Amount, 0) {
		return fmt.Errorf("%w: amount is not a number", ErrMalformedFacts)
	}
	if f.DiscrepancyCount < 0 {
		return fmt.Errorf("%w: negative discrepancy count", ErrMalformedFacts)
	}
	return nil
}

// evalCondition evaluates one condition string. Combinators split on the
// literal " AND " / " OR " separators with no precedence or parentheses;
// every other form is a single atom. Unrecognized input is false
// (fail-closed).
func evalCondition(condition string, facts Facts) bool {
	if strings.Contains(condition, " AND ") {
		for _, sub := range strings.Split(condition, " AND ") {
			if !evalCondition(sub, facts) {
				return false
			}
		}
		return true
	}
	if strings.Contains(condition, " OR ") {
		for _, sub := range strings.Split(condition, " OR ") {
			if evalCondition(sub, facts) {
				return true
			}
		}
		return false
	}
	return evalAtom(condition, facts)
}

func evalAtom(atom string, facts Facts) bool {
	switch atom {
	case "IsFlagged":
		return facts.Status == string(constants.StatusFlagged)
	case "IsValidated":
		return facts.Status == string(constants.StatusValidated)
	case "true":
		return true
	}

	if m := amountRe.FindStringSubmatch(atom); m != nil {
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return false
		}
		return compareFloat(facts.Amount, m[1], value)
	}

	if m := discrepancyRe.FindStringSubmatch(atom); m != nil {
		value, err := strconv.Atoi(m[2])
		if err != nil {
			return false
		}
		return compareFloat(float64(facts.DiscrepancyCount), m[1], float64(value))
	}

	if m := vendorRe.FindStringSubmatch(atom); m != nil {
		return facts.VendorName == m[1]
	}

	return false
}

func compareFloat(lhs float64, op string, rhs float64) bool {
	switch op {
	case ">":
		return lhs > rhs
	case ">=":
		return lhs >= rhs
	case "<":
		return lhs < rhs
	case "<=":
		return lhs <= rhs
	case "==":
		return lhs == rhs
	case "!=":
		return lhs != rhs
	}
	return false
}

// DefaultRules is the built-in rule set used when the store has none.
func DefaultRules() []*entity.WorkflowRule {
	return []*entity.WorkflowRule{
		{
			Name:      "Auto-Approve Validated Small Invoices",
			Condition: "IsValidated AND Amount < 1000",
			Action:    constants.ActionAutoApprove,
			Priority:  100,
			IsActive:  true,
		},
		{
			Name:      "Manager Review for Flagged Invoices",
			Condition: "IsFlagged",
			Action:    constants.ActionRequireManagerApproval,
			Priority:  90,
			IsActive:  true,
		},
		{
			Name:      "Manager Review for Large Invoices",
			Condition: "Amount >= 1000",
			Action:    constants.ActionRequireManagerApproval,
			Priority:  80,
			IsActive:  true,
		},
		{
			Name:      "Default Rule",
			Condition: "true",
			Action:    constants.ActionRequireReview,
			Priority:  0,
			IsActive:  true,
		},
	}
}
