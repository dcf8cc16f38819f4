package nlp

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
)

var reStatusWord = regexp.MustCompile(`\b(pending|approved|rejected)\b`)

// Executor resuelve cada intent contra los repositorios y arma la respuesta
// en texto. El summarizer es opcional: sin él, policy_qa devuelve el cuerpo
// de la política tal cual con su fuente.
type Executor struct {
	router       *Router
	employeeRepo repository.EmployeeRepository
	leaveRepo    repository.LeaveRepository
	policyRepo   repository.PolicyRepository
	summarizer   ContentGenerator
	logger       zerolog.Logger
}

// NewExecutor construye el executor. summarizer puede ser nil.
func NewExecutor(
	router *Router,
	employeeRepo repository.EmployeeRepository,
	leaveRepo repository.LeaveRepository,
	policyRepo repository.PolicyRepository,
	summarizer ContentGenerator,
	logger zerolog.Logger,
) *Executor {
	return &Executor{
		router:       router,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		policyRepo:   policyRepo,
		summarizer:   summarizer,
		logger:       logger.With().Str("component", "nlp_executor").Logger(),
	}
}

// Execute enruta y ejecuta una consulta en texto libre. Las respuestas del
// asistente van en inglés, el idioma del corpus de políticas.
func (e *Executor) Execute(ctx context.Context, text string) (*dto.NLPQueryResponse, error) {
	parsed := e.router.Route(ctx, text)
	e.logger.Debug().
		Str("intent", parsed.Intent).
		Float64("confidence", parsed.Confidence).
		Msg("Consulta enrutada")

	switch parsed.Intent {
	case IntentLeaveBalance:
		emp, resp, err := e.resolveEmployee(parsed.Employee)
		if resp != nil || err != nil {
			return resp, err
		}
		return e.leaveBalance(emp)
	case IntentLeaveStatus:
		emp, resp, err := e.resolveEmployee(parsed.Employee)
		if resp != nil || err != nil {
			return resp, err
		}
		return e.leaveStatus(emp, parsed.LeaveType)
	case IntentLeaveHowto:
		return e.leaveHowto(ctx, parsed.LeaveType)
	case IntentUtilityCount:
		return e.utilityCount(text, parsed)
	case IntentUtilityList:
		return e.utilityList(parsed.PolicyTopic)
	case IntentEmployeeLookup:
		return e.employeeLookup(parsed.Employee, parsed.Meta.DirectoryField)
	default:
		// smalltalk se trata como intento de policy_qa.
		return e.policyQA(ctx, text, parsed.PolicyTopic)
	}
}

// resolveEmployee identifica al empleado por ID o nombre. Un resp no nulo
// es la respuesta final al usuario (no identificado o ambiguo).
func (e *Executor) resolveEmployee(slot EmployeeSlot) (*entity.Employee, *dto.NLPQueryResponse, error) {
	if slot.EmpID != "" {
		emp, err := e.employeeRepo.FindByCode(slot.EmpID)
		if err != nil {
			return nil, nil, err
		}
		if emp != nil {
			return emp, nil, nil
		}
	}
	if slot.Name != "" {
		exact, err := e.employeeRepo.FindByNameExact(slot.Name)
		if err != nil {
			return nil, nil, err
		}
		if len(exact) == 1 {
			return exact[0], nil, nil
		}
		if len(exact) > 1 {
			return nil, ambiguousResponse(exact), nil
		}
		prefix, err := e.employeeRepo.FindByNamePrefix(slot.Name)
		if err != nil {
			return nil, nil, err
		}
		if len(prefix) == 1 {
			return prefix[0], nil, nil
		}
		if len(prefix) > 1 {
			return nil, ambiguousResponse(prefix), nil
		}
	}
	return nil, &dto.NLPQueryResponse{
		Text: "I couldn't identify the employee. Please provide your employee ID or full name.",
	}, nil
}

func ambiguousResponse(matches []*entity.Employee) *dto.NLPQueryResponse {
	names := make([]string, 0, 5)
	for i, emp := range matches {
		if i == 5 {
			break
		}
		names = append(names, emp.FullName)
	}
	return &dto.NLPQueryResponse{
		Text: fmt.Sprintf("I found multiple matches: %s. Please specify the full name or employee ID.",
			strings.Join(names, ", ")),
	}
}

func (e *Executor) leaveBalance(emp *entity.Employee) (*dto.NLPQueryResponse, error) {
	balance, err := e.leaveRepo.Balance(emp.EmpID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("%s, I couldn't find your leave balance.", emp.FullName),
		}, nil
	}
	return &dto.NLPQueryResponse{
		Text: fmt.Sprintf("%s, you have %d annual, %d sick, %d casual days remaining (updated %s).",
			emp.FullName, balance.Annual, balance.Sick, balance.Casual, fmtDate(balance.UpdatedAt)),
		Meta: map[string]any{"balance": map[string]any{
			"annual": balance.Annual,
			"sick":   balance.Sick,
			"casual": balance.Casual,
		}},
	}, nil
}

func (e *Executor) leaveStatus(emp *entity.Employee, leaveType string) (*dto.NLPQueryResponse, error) {
	req, err := e.leaveRepo.LastRequest(emp.EmpID, leaveType)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("%s, I couldn't find any leave requests.", emp.FullName),
		}, nil
	}
	return &dto.NLPQueryResponse{
		Text: fmt.Sprintf("Your last leave (%s to %s, %s) is %s.",
			fmtDate(req.Start), fmtDate(req.End), req.Type, req.Status),
		Meta: map[string]any{"request": map[string]any{
			"type":   req.Type,
			"status": req.Status,
			"start":  fmtDate(req.Start),
			"end":    fmtDate(req.End),
		}},
	}, nil
}

func (e *Executor) leaveHowto(ctx context.Context, leaveType string) (*dto.NLPQueryResponse, error) {
	policy, err := e.policyRepo.SearchTop("leave application")
	if err != nil {
		return nil, err
	}
	if policy != nil {
		text := e.summarize(ctx, "How to apply leave", policy.Title, policy.Description)
		return &dto.NLPQueryResponse{
			Text: text,
			Meta: map[string]any{"policy": map[string]any{"title": policy.Title, "slug": policy.Slug}},
		}, nil
	}
	base := "Apply leave via the HRIS Leave form. Manager approval is required. Submit at least 1 business day in advance."
	if leaveType != "" {
		base = fmt.Sprintf("For %s leave: %s", leaveType, base)
	}
	return &dto.NLPQueryResponse{Text: base}, nil
}

func (e *Executor) utilityCount(text string, parsed RouteResult) (*dto.NLPQueryResponse, error) {
	low := strings.ToLower(text)

	if reEmployees.MatchString(low) {
		var dept string
		if m := reDeptPhrase.FindStringSubmatch(low); m != nil {
			dept = strings.TrimSpace(m[1])
		}
		var n int64
		var err error
		if dept != "" {
			n, err = e.employeeRepo.CountByDept(dept)
		} else {
			n, err = e.employeeRepo.Count()
		}
		if err != nil {
			return nil, err
		}
		if dept != "" {
			return &dto.NLPQueryResponse{
				Text: fmt.Sprintf("There are %d employees in the %s department.", n, titleWords(dept)),
				Meta: map[string]any{"count": n, "dept": dept},
			}, nil
		}
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("There are %d employees in the company.", n),
			Meta: map[string]any{"count": n},
		}, nil
	}

	if strings.Contains(low, "leave") && strings.Contains(low, "request") {
		status := ""
		if m := reStatusWord.FindStringSubmatch(low); m != nil {
			status = m[1]
		}
		n, err := e.leaveRepo.CountRequests(status)
		if err != nil {
			return nil, err
		}
		if status != "" {
			return &dto.NLPQueryResponse{
				Text: fmt.Sprintf("There are %d %s leave requests.", n, status),
				Meta: map[string]any{"count": n, "status": status},
			}, nil
		}
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("There are %d leave requests in total.", n),
			Meta: map[string]any{"count": n},
		}, nil
	}

	topic := parsed.PolicyTopic
	if topic == "" && strings.Contains(low, "how many") {
		after := strings.TrimSpace(strings.SplitN(low, "how many", 2)[1])
		topic = strings.TrimSpace(strings.ReplaceAll(after, "policies", ""))
	}
	n, err := e.policyRepo.Count(topic)
	if err != nil {
		return nil, err
	}
	if topic != "" {
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("There are %d policies matching %q.", n, topic),
			Meta: map[string]any{"count": n, "topic": topic},
		}, nil
	}
	return &dto.NLPQueryResponse{
		Text: fmt.Sprintf("We have %d policies.", n),
		Meta: map[string]any{"count": n},
	}, nil
}

func (e *Executor) utilityList(topic string) (*dto.NLPQueryResponse, error) {
	policies, err := e.policyRepo.List(topic, 10)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return &dto.NLPQueryResponse{Text: "I couldn't find any matching policies to list."}, nil
	}
	lines := make([]string, 0, len(policies))
	items := make([]map[string]any, 0, len(policies))
	for _, p := range policies {
		lines = append(lines, fmt.Sprintf("• %s (%s)", p.Title, p.Slug))
		items = append(items, map[string]any{"title": p.Title, "slug": p.Slug})
	}
	return &dto.NLPQueryResponse{
		Text: "Here are some policies:\n" + strings.Join(lines, "\n"),
		Meta: map[string]any{"items": items},
	}, nil
}

func (e *Executor) employeeLookup(slot EmployeeSlot, field string) (*dto.NLPQueryResponse, error) {
	if slot.EmpID == "" && slot.Name == "" {
		return &dto.NLPQueryResponse{Text: "Please provide an employee ID or full name."}, nil
	}

	var emp *entity.Employee
	var err error
	if slot.EmpID != "" {
		emp, err = e.employeeRepo.FindByCode(slot.EmpID)
	} else {
		var exact []*entity.Employee
		exact, err = e.employeeRepo.FindByNameExact(slot.Name)
		if err == nil && len(exact) > 0 {
			emp = exact[0]
		}
	}
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return &dto.NLPQueryResponse{Text: "I couldn't find that employee. Check the ID or name."}, nil
	}

	if field == "" {
		field = "full_name"
	}
	value := map[string]string{
		"full_name": emp.FullName,
		"email":     emp.Email,
		"dept":      emp.Dept,
		"emp_id":    emp.EmpID,
	}[field]
	if value == "" {
		return &dto.NLPQueryResponse{
			Text: fmt.Sprintf("I couldn't find %s for %s.", strings.ReplaceAll(field, "_", " "), emp.FullName),
		}, nil
	}

	subject := emp.FullName
	if slot.EmpID != "" {
		subject = fmt.Sprintf("Employee %s", emp.EmpID)
	}
	switch field {
	case "full_name":
		return &dto.NLPQueryResponse{Text: fmt.Sprintf("%s is %s.", subject, value)}, nil
	case "email":
		return &dto.NLPQueryResponse{Text: fmt.Sprintf("%s's email is %s.", subject, value)}, nil
	case "dept":
		return &dto.NLPQueryResponse{Text: fmt.Sprintf("%s is in the %s department.", subject, value)}, nil
	default:
		return &dto.NLPQueryResponse{Text: fmt.Sprintf("%s's employee ID is %s.", emp.FullName, value)}, nil
	}
}

func (e *Executor) policyQA(ctx context.Context, question, topic string) (*dto.NLPQueryResponse, error) {
	if topic == "" {
		topic = question
	}
	policy, err := e.policyRepo.SearchTop(topic)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		suggestions, err := e.policyRepo.List(topic, 5)
		if err != nil {
			return nil, err
		}
		if len(suggestions) > 0 {
			lines := make([]string, 0, len(suggestions))
			for _, p := range suggestions {
				lines = append(lines, "• "+p.Title)
			}
			return &dto.NLPQueryResponse{
				Text: "I couldn't find an exact match. Did you mean:\n" + strings.Join(lines, "\n"),
			}, nil
		}
		return &dto.NLPQueryResponse{Text: "Sorry, I couldn't find a matching policy."}, nil
	}

	answer := e.summarize(ctx, question, policy.Title, policy.Description)
	if answer == policy.Description {
		answer += "\n\nSource: " + policy.Title
	}
	return &dto.NLPQueryResponse{
		Text: answer,
		Meta: map[string]any{"policy": map[string]any{"title": policy.Title, "slug": policy.Slug}},
	}, nil
}

// summarize pule la respuesta con el LLM si está habilitado; ante cualquier
// fallo devuelve el cuerpo original.
func (e *Executor) summarize(ctx context.Context, question, title, body string) string {
	if e.summarizer == nil {
		return body
	}
	prompt := fmt.Sprintf(
		"User question: %s\nPolicy: %s\nPolicy text:\n%s\n\n"+
			"Write a concise 2-3 sentence answer. Be precise. End with: Source: %s.",
		question, title, body, title)
	out, err := e.summarizer.GenerateContent(ctx, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			e.logger.Warn().Err(err).Msg("Summarizer falló, se devuelve el texto original")
		}
		return body
	}
	return strings.TrimSpace(out)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
