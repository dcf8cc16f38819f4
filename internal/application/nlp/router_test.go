package nlp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/smarthr-api/internal/application/nlp"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestRouter_SinGeneratorUsaReglas(t *testing.T) {
	router := nlp.NewRouter(nil, zerolog.Nop())
	r := router.Route(context.Background(), "How many policies do we have?")
	assert.Equal(t, nlp.IntentUtilityCount, r.Intent)
}

// El modelo contesta con fences de markdown y null donde va string: ambos
// se toleran.
func TestRouter_JSONConFencesYNulls(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" +
		`{"intent":"leave_balance","employee":{"name":"Bob","emp_id":null},` +
		`"leave_type":null,"policy_topic":null,` +
		`"meta":{"wants_count":"false","wants_list":false,"list_target":null,"directory_field":null}}` +
		"\n```"}
	router := nlp.NewRouter(gen, zerolog.Nop())

	r := router.Route(context.Background(), "Hi I am Bob, how many leaves left?")
	assert.Equal(t, nlp.IntentLeaveBalance, r.Intent)
	assert.Equal(t, "Bob", r.Employee.Name)
	assert.Empty(t, r.Employee.EmpID)
	assert.InDelta(t, 0.85, r.Confidence, 1e-9)
}

func TestRouter_FallaLLMDegradaAReglas(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	router := nlp.NewRouter(gen, zerolog.Nop())

	r := router.Route(context.Background(), "list policies please")
	assert.Equal(t, nlp.IntentUtilityList, r.Intent, "fallback por error del modelo")
}

func TestRouter_IntentDesconocidoDegradaAReglas(t *testing.T) {
	gen := &fakeGenerator{response: `{"intent":"order_pizza"}`}
	router := nlp.NewRouter(gen, zerolog.Nop())

	r := router.Route(context.Background(), "How to apply for casual leave?")
	assert.Equal(t, nlp.IntentLeaveHowto, r.Intent)
	assert.Equal(t, "casual", r.LeaveType)
}

func TestRouter_JSONInvalidoDegradaAReglas(t *testing.T) {
	gen := &fakeGenerator{response: "sure! here is the intent you asked for"}
	router := nlp.NewRouter(gen, zerolog.Nop())

	r := router.Route(context.Background(), "Any policies about remote work?")
	assert.Equal(t, nlp.IntentPolicyQA, r.Intent)
}
