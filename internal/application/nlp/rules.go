package nlp

import (
	"regexp"
	"strings"
)

// Patrones del router de reglas. Vocabulario en inglés porque el corpus de
// consultas de la empresa lo está.
var (
	reIDAssign   = regexp.MustCompile(`\bid\s*[:=]\s*\w+`)
	reEmpID      = regexp.MustCompile(`\b([a-z]\d{2,}|e\d+)\b`)
	reSelfIntro  = regexp.MustCompile(`\bi am ([a-z ]+)\b`)
	reDeptPhrase = regexp.MustCompile(`\b(?:in|within)\s+(?:the\s+)?([a-z0-9 &/\-]+?)(?:\s+(?:dept|department|team|division)|\?|$)`)
	reEmployees  = regexp.MustCompile(`\b(employees?|staff|headcount|people|workers)\b`)
)

// RuleRoute router determinista por patrones. Es el fallback cuando el LLM
// está deshabilitado o falla, y la referencia de comportamiento mínimo del
// asistente: cualquier texto no reconocido cae a policy_qa con el texto
// completo como topic.
func RuleRoute(text string) RouteResult {
	tl := strings.ToLower(strings.TrimSpace(text))

	// Directorio de empleados.
	if strings.Contains(tl, "employee id") || strings.Contains(tl, "emp id") || reIDAssign.MatchString(tl) {
		field := "full_name"
		if strings.Contains(tl, "email") {
			field = "email"
		}
		if strings.Contains(tl, "department") || strings.Contains(tl, "dept") {
			field = "dept"
		}
		var empID string
		if m := reEmpID.FindStringSubmatch(tl); m != nil {
			empID = strings.ToUpper(m[1])
		}
		return RouteResult{
			Intent:     IntentEmployeeLookup,
			Employee:   EmployeeSlot{EmpID: empID},
			Meta:       MetaSlot{DirectoryField: field},
			Confidence: 0.6,
		}
	}
	if (strings.Contains(tl, "full name") && (strings.Contains(tl, "employee") || strings.Contains(tl, "id"))) ||
		strings.Contains(tl, "email of") {
		return RouteResult{Intent: IntentEmployeeLookup, Confidence: 0.55}
	}

	// Utilitarios.
	for _, k := range []string{"how many policies", "number of policies", "count policies"} {
		if strings.Contains(tl, k) {
			return RouteResult{Intent: IntentUtilityCount, Confidence: 0.5}
		}
	}
	if strings.Contains(tl, "how many") && reEmployees.MatchString(tl) {
		return RouteResult{Intent: IntentUtilityCount, Confidence: 0.5}
	}
	if strings.Contains(tl, "how many") && strings.Contains(tl, "leave") && strings.Contains(tl, "request") {
		return RouteResult{Intent: IntentUtilityCount, Confidence: 0.5}
	}
	if (strings.Contains(tl, "list") && strings.Contains(tl, "polic")) || strings.Contains(tl, "show policies") {
		return RouteResult{
			Intent:     IntentUtilityList,
			Meta:       MetaSlot{WantsList: true, ListTarget: "policies"},
			Confidence: 0.5,
		}
	}

	// Licencias.
	if strings.Contains(tl, "how to apply") && strings.Contains(tl, "leave") {
		return RouteResult{Intent: IntentLeaveHowto, LeaveType: leaveTypeIn(tl), Confidence: 0.5}
	}
	if strings.Contains(tl, "status") && strings.Contains(tl, "leave") {
		var name string
		if m := reSelfIntro.FindStringSubmatch(tl); m != nil {
			name = titleWords(strings.TrimSpace(m[1]))
		}
		return RouteResult{
			Intent:     IntentLeaveStatus,
			Employee:   EmployeeSlot{Name: name},
			LeaveType:  leaveTypeIn(tl),
			Confidence: 0.5,
		}
	}
	if strings.Contains(tl, "leave") {
		for _, x := range []string{"how many", "balance", "left"} {
			if strings.Contains(tl, x) {
				var name string
				if m := reSelfIntro.FindStringSubmatch(tl); m != nil {
					name = titleWords(strings.TrimSpace(m[1]))
				}
				return RouteResult{
					Intent:     IntentLeaveBalance,
					Employee:   EmployeeSlot{Name: name},
					Confidence: 0.5,
				}
			}
		}
	}

	return RouteResult{Intent: IntentPolicyQA, PolicyTopic: text, Confidence: 0.4}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func leaveTypeIn(tl string) string {
	for _, lt := range []string{"annual", "sick", "casual"} {
		if strings.Contains(tl, lt) {
			return lt
		}
	}
	return ""
}
