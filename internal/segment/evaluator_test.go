package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/engage-crm/internal/models"
)

func rule(field string, op models.RuleOperator, v float64) models.Rule {
	return models.Rule{Field: field, Operator: op, Value: v}
}

func TestMatches(t *testing.T) {
	spender := &models.Customer{Name: "Ada", TotalSpend: 1200, TotalVisits: 5, TotalOrders: 3}

	tests := []struct {
		name  string
		rules []models.Rule
		want  bool
	}{
		{"nil rules match everyone", nil, true},
		{"empty rules match everyone", []models.Rule{}, true},
		{"spend gt 1000", []models.Rule{rule(models.FieldTotalSpend, models.OperatorGT, 1000)}, true},
		{"spend lt 1000", []models.Rule{rule(models.FieldTotalSpend, models.OperatorLT, 1000)}, false},
		{"spend gte boundary", []models.Rule{rule(models.FieldTotalSpend, models.OperatorGTE, 1200)}, true},
		{"spend gt boundary", []models.Rule{rule(models.FieldTotalSpend, models.OperatorGT, 1200)}, false},
		{"orders lte", []models.Rule{rule(models.FieldTotalOrders, models.OperatorLTE, 3)}, true},
		{"orders eq", []models.Rule{rule(models.FieldTotalOrders, models.OperatorEQ, 3)}, true},
		{"visits eq miss", []models.Rule{rule(models.FieldTotalVisits, models.OperatorEQ, 6)}, false},
		{
			"second rule fails the conjunction",
			[]models.Rule{
				rule(models.FieldTotalSpend, models.OperatorGT, 1000),
				rule(models.FieldTotalVisits, models.OperatorGTE, 10),
			},
			false,
		},
		{"unknown operator fails closed", []models.Rule{rule(models.FieldTotalSpend, "ne", 1)}, false},
		{"non-numeric field fails closed", []models.Rule{rule("name", models.OperatorGT, 0)}, false},
		{"unknown field fails closed", []models.Rule{rule("lifetimeValue", models.OperatorGTE, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(spender, tt.rules))
		})
	}
}

func TestMatchesNilCustomer(t *testing.T) {
	assert.False(t, Matches(nil, nil))
}

func TestFilterPreservesOrder(t *testing.T) {
	a := &models.Customer{Name: "a", TotalSpend: 10}
	b := &models.Customer{Name: "b", TotalSpend: 2000}
	c := &models.Customer{Name: "c", TotalSpend: 5000}

	got := Filter([]*models.Customer{c, a, b}, []models.Rule{rule(models.FieldTotalSpend, models.OperatorGT, 1000)})
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "b", got[1].Name)

	assert.Empty(t, Filter(nil, nil))
}

func TestValidateRules(t *testing.T) {
	assert.NoError(t, ValidateRules(nil))
	assert.NoError(t, ValidateRules([]models.Rule{rule(models.FieldTotalVisits, models.OperatorLTE, 2)}))
	assert.ErrorContains(t, ValidateRules([]models.Rule{rule("email", models.OperatorEQ, 0)}), "unknown field")
	assert.ErrorContains(t, ValidateRules([]models.Rule{rule(models.FieldTotalSpend, "between", 0)}), "unknown operator")
}

func TestFieldsAndOperatorsPassValidation(t *testing.T) {
	for _, f := range Fields() {
		for _, op := range Operators() {
			assert.NoError(t, ValidateRules([]models.Rule{rule(f, op, 1)}), "%s %s", f, op)
		}
	}
	assert.Len(t, Fields(), 3)
	assert.Len(t, Operators(), 5)
}
