package nlp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/smarthr-api/internal/application/nlp"
)

func TestRuleRoute_Directorio(t *testing.T) {
	r := nlp.RuleRoute("what is the full name of employee id E002?")
	assert.Equal(t, nlp.IntentEmployeeLookup, r.Intent)
	assert.Equal(t, "E002", r.Employee.EmpID)
	assert.Equal(t, "full_name", r.Meta.DirectoryField)

	r = nlp.RuleRoute("email of employee id e015")
	assert.Equal(t, nlp.IntentEmployeeLookup, r.Intent)
	assert.Equal(t, "E015", r.Employee.EmpID)
	assert.Equal(t, "email", r.Meta.DirectoryField)

	r = nlp.RuleRoute("which department is emp id E002 in")
	assert.Equal(t, "dept", r.Meta.DirectoryField)
}

func TestRuleRoute_Utilitarios(t *testing.T) {
	r := nlp.RuleRoute("How many policies do we have?")
	assert.Equal(t, nlp.IntentUtilityCount, r.Intent)

	r = nlp.RuleRoute("how many employees in the engineering department?")
	assert.Equal(t, nlp.IntentUtilityCount, r.Intent)

	r = nlp.RuleRoute("list policies under workplace rules")
	assert.Equal(t, nlp.IntentUtilityList, r.Intent)
	assert.True(t, r.Meta.WantsList)
	assert.Equal(t, "policies", r.Meta.ListTarget)
}

func TestRuleRoute_Licencias(t *testing.T) {
	r := nlp.RuleRoute("How to apply for annual leave?")
	assert.Equal(t, nlp.IntentLeaveHowto, r.Intent)
	assert.Equal(t, "annual", r.LeaveType)

	r = nlp.RuleRoute("what is the status of my sick leave request")
	assert.Equal(t, nlp.IntentLeaveStatus, r.Intent)
	assert.Equal(t, "sick", r.LeaveType)

	r = nlp.RuleRoute("Hi I am Bob, how many leaves I have left?")
	assert.Equal(t, nlp.IntentLeaveBalance, r.Intent)
	assert.Equal(t, "Bob", r.Employee.Name)
}

func TestRuleRoute_DefaultPolicyQA(t *testing.T) {
	r := nlp.RuleRoute("Any policies in leaving the company?")
	assert.Equal(t, nlp.IntentPolicyQA, r.Intent)
	assert.Equal(t, "Any policies in leaving the company?", r.PolicyTopic)
	assert.InDelta(t, 0.4, r.Confidence, 1e-9)
}
