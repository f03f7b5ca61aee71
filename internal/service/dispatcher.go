package service

import (
	"strings"

	"github.com/liliang-cn/smartoffice/internal/domain"
)

// EmployeeLookup resolves employee ids to profiles
type EmployeeLookup interface {
	Get(id string) (domain.Employee, bool)
}

// rule pairs an intent predicate with its response template.
// Rules are evaluated in slice order and the first match wins.
type rule struct {
	intent domain.Intent
	match  func(lower string) bool
	render func(rc *renderContext) string
}

// Dispatcher maps a free-text message to a canned response by keyword rules.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	employees EmployeeLookup
	knowledge *domain.KnowledgeBase
	rules     []rule
}

// NewDispatcher creates a dispatcher over the directory and knowledge base
func NewDispatcher(employees EmployeeLookup, knowledge *domain.KnowledgeBase) *Dispatcher {
	return &Dispatcher{
		employees: employees,
		knowledge: knowledge,
		rules:     defaultRules(),
	}
}

func defaultRules() []rule {
	return []rule{
		{
			intent: domain.IntentGreeting,
			match:  containsAny("hello", "hi", "hey", "good morning", "good afternoon"),
			render: renderGreeting,
		},
		{
			intent: domain.IntentLeaveBalance,
			match:  allOf(containsAny("leave"), containsAny("balance", "remaining", "left", "how many")),
			render: renderLeaveBalance,
		},
		{
			intent: domain.IntentSickLeave,
			match:  containsAny("sick leave", "sick day", "need sick", "feeling sick"),
			render: renderSickLeave,
		},
		{
			intent: domain.IntentVacation,
			match:  containsAny("vacation", "annual leave", "time off", "holiday"),
			render: renderVacation,
		},
		{
			intent: domain.IntentRemoteWork,
			match:  containsAny("remote work", "work from home", "wfh"),
			render: renderRemoteWork,
		},
		{
			intent: domain.IntentBenefits,
			match:  containsAny("benefits"),
			render: renderBenefits,
		},
		{
			intent: domain.IntentLeavePolicy,
			match:  containsAny("leave policy", "time off policy"),
			render: renderLeavePolicy,
		},
		{
			intent: domain.IntentProfile,
			match:  containsAny("my profile", "my info", "show my"),
			render: renderProfile,
		},
		{
			intent: domain.IntentManager,
			match:  allOf(containsAny("manager"), containsAny("who", "my", "contact")),
			render: renderManager,
		},
		{
			intent: domain.IntentContactInfo,
			match:  containsAny("contact", "phone", "address", "office"),
			render: renderContactInfo,
		},
		{
			intent: domain.IntentGratitude,
			match:  containsAny("thank", "thanks", "appreciate"),
			render: renderGratitude,
		},
	}
}

// Respond returns the rendered response for a message. It never fails and
// never returns an empty string.
func (d *Dispatcher) Respond(message, employeeID string) string {
	_, text := d.Dispatch(message, employeeID)
	return text
}

// Classify returns the intent a message resolves to
func (d *Dispatcher) Classify(message string) domain.Intent {
	if r := d.match(strings.ToLower(message)); r != nil {
		return r.intent
	}
	return domain.IntentFallback
}

// Dispatch returns the matched intent together with the rendered response
func (d *Dispatcher) Dispatch(message, employeeID string) (domain.Intent, string) {
	employee, found := d.employees.Get(employeeID)
	rc := &renderContext{
		message:   message,
		employee:  employee,
		found:     found,
		knowledge: d.knowledge,
	}

	r := d.match(strings.ToLower(message))
	if r == nil {
		return domain.IntentFallback, renderFallback(rc)
	}
	return r.intent, r.render(rc)
}

func (d *Dispatcher) match(lower string) *rule {
	for i := range d.rules {
		if d.rules[i].match(lower) {
			return &d.rules[i]
		}
	}
	return nil
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
