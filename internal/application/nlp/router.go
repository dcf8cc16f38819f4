package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const routerSystem = "You are an HR NLU router. Output ONLY valid JSON with the fields " +
	"intent, employee {name, emp_id}, leave_type, policy_topic, " +
	"meta {wants_count, wants_list, list_target, directory_field}. " +
	"Supported intents: policy_qa, leave_balance, leave_status, leave_howto, " +
	"utility_count, utility_list, employee_lookup, smalltalk. " +
	"If the user self-identifies (e.g. 'I am Bob'), set employee.name. " +
	"If they give an employee ID (e.g. E002), set employee.emp_id. " +
	"For 'how many' questions set intent=utility_count and meta.wants_count=true. " +
	"For 'list policies/categories' set intent=utility_list with list_target. " +
	"For directory questions like 'email of Bob' set intent=employee_lookup " +
	"and meta.directory_field accordingly. " +
	"For policy questions use intent=policy_qa with a short policy_topic phrase."

// Few-shot que ancla el formato de salida. Se mantiene corto: el schema ya
// está descrito en el system prompt.
var routerExamples = []struct {
	user string
	json string
}{
	{
		"Hi I am Bob, how many leaves I have left?",
		`{"intent":"leave_balance","employee":{"name":"Bob","emp_id":""},"leave_type":"","policy_topic":"","meta":{"wants_count":false,"wants_list":false,"list_target":"","directory_field":""}}`,
	},
	{
		"Any policies in leaving the company?",
		`{"intent":"policy_qa","employee":{"name":"","emp_id":""},"leave_type":"","policy_topic":"leaving the company","meta":{"wants_count":false,"wants_list":false,"list_target":"","directory_field":""}}`,
	},
	{
		"How many policies do we have?",
		`{"intent":"utility_count","employee":{"name":"","emp_id":""},"leave_type":"","policy_topic":"","meta":{"wants_count":true,"wants_list":false,"list_target":"","directory_field":""}}`,
	},
	{
		"what is the full name of employee id E002?",
		`{"intent":"employee_lookup","employee":{"name":"","emp_id":"E002"},"leave_type":"","policy_topic":"","meta":{"wants_count":false,"wants_list":false,"list_target":"","directory_field":"full_name"}}`,
	},
	{
		"How to apply for annual leave?",
		`{"intent":"leave_howto","employee":{"name":"","emp_id":""},"leave_type":"annual","policy_topic":"","meta":{"wants_count":false,"wants_list":false,"list_target":"","directory_field":""}}`,
	},
}

// Router clasifica texto libre en RouteResult. Con generator nil (o
// deshabilitado por configuración) usa únicamente las reglas; con LLM, el
// fallo del modelo o un JSON imparseable degradan a reglas en vez de fallar
// la consulta.
type Router struct {
	generator ContentGenerator
	logger    zerolog.Logger
}

// NewRouter construye el router. generator puede ser nil.
func NewRouter(generator ContentGenerator, logger zerolog.Logger) *Router {
	return &Router{
		generator: generator,
		logger:    logger.With().Str("component", "nlp_router").Logger(),
	}
}

// Route clasifica la consulta.
func (r *Router) Route(ctx context.Context, text string) RouteResult {
	if r.generator == nil {
		return RuleRoute(text)
	}

	raw, err := r.generator.GenerateContent(ctx, r.buildPrompt(text))
	if err != nil {
		r.logger.Warn().Err(err).Msg("Router LLM falló, fallback a reglas")
		return RuleRoute(text)
	}

	result, err := parseRouteJSON(raw)
	if err != nil {
		r.logger.Warn().Err(err).Str("raw", raw).Msg("Respuesta del router imparseable, fallback a reglas")
		return RuleRoute(text)
	}
	result.Confidence = 0.85
	return result
}

func (r *Router) buildPrompt(text string) string {
	var b strings.Builder
	b.WriteString(routerSystem)
	b.WriteString("\n\n")
	for _, ex := range routerExamples {
		fmt.Fprintf(&b, "User: %s\nJSON: %s\n", ex.user, ex.json)
	}
	fmt.Fprintf(&b, "User: %s\nJSON:", text)
	return b.String()
}

// parseRouteJSON tolera las libertades típicas del modelo: fences de
// markdown, null en vez de string vacío, números como strings.
func parseRouteJSON(raw string) (RouteResult, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return RouteResult{}, fmt.Errorf("parsear respuesta del router: %w", err)
	}

	result := RouteResult{
		Intent:      coerceString(data["intent"]),
		LeaveType:   coerceString(data["leave_type"]),
		PolicyTopic: coerceString(data["policy_topic"]),
	}
	if emp, ok := data["employee"].(map[string]any); ok {
		result.Employee = EmployeeSlot{
			Name:  coerceString(emp["name"]),
			EmpID: coerceString(emp["emp_id"]),
		}
	}
	if meta, ok := data["meta"].(map[string]any); ok {
		result.Meta = MetaSlot{
			WantsCount:     coerceBool(meta["wants_count"]),
			WantsList:      coerceBool(meta["wants_list"]),
			ListTarget:     coerceString(meta["list_target"]),
			DirectoryField: coerceString(meta["directory_field"]),
		}
	}

	if !intents[result.Intent] {
		return RouteResult{}, fmt.Errorf("intent desconocido %q", result.Intent)
	}
	return result, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}
