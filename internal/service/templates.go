package service

import (
	"fmt"

	"github.com/liliang-cn/smartoffice/internal/domain"
)

// Fallback values for employees missing from the directory
const (
	defaultName     = "Employee"
	defaultPosition = "team member"
	defaultManager  = "Not specified"
	unknownManager  = "N/A"
)

type renderContext struct {
	message   string
	employee  domain.Employee
	found     bool
	knowledge *domain.KnowledgeBase
}

func (rc *renderContext) name() string {
	return orDefault(rc.employee.Name, defaultName)
}

func (rc *renderContext) policy(topic string) string {
	return rc.knowledge.Policy(topic)
}

func (rc *renderContext) company() domain.CompanyInfo {
	if rc.knowledge == nil {
		return domain.CompanyInfo{}
	}
	return rc.knowledge.CompanyInfo
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func renderGreeting(rc *renderContext) string {
	return fmt.Sprintf("🌟 Welcome to Smart Office Assistant!\n\n"+
		"Hello %s! I'm pre-loaded with complete TechCorp knowledge - no uploads needed! I can help you with:\n\n"+
		"🏖️ Leave Requests: \"I need sick leave tomorrow\"\n"+
		"📋 Company Policies: \"What's the remote work policy?\"\n"+
		"👤 Employee Info: \"Show my profile\"\n"+
		"💼 Benefits: \"What benefits do we have?\"\n\n"+
		"Just ask me anything in natural language!", rc.name())
}

func renderLeaveBalance(rc *renderContext) string {
	if !rc.found {
		return fmt.Sprintf("❌ I couldn't find your employee information. Please contact HR at %s", rc.company().HREmail)
	}
	lb := rc.employee.LeaveBalance
	return fmt.Sprintf("📊 Your Current Leave Balance:\n\n"+
		"🏖️ Annual Leave: %d days\n"+
		"🤒 Sick Leave: %d days\n"+
		"👨‍👩‍👧‍👦 Personal Leave: %d days\n\n"+
		"💡 Need to request leave? Just tell me: \"I need sick leave tomorrow\" or \"I want to take vacation next week\"",
		lb.Annual, lb.Sick, lb.Personal)
}

func renderSickLeave(rc *renderContext) string {
	return fmt.Sprintf("🤒 Sick Leave Request Noted!\n\n"+
		"I understand you need sick leave tomorrow. Based on my knowledge:\n\n"+
		"✅ You have %d sick days remaining\n"+
		"📋 Action Items:\n"+
		"• Notify your manager: %s\n"+
		"• Submit medical certificate if >2 days\n"+
		"• Update your calendar and out-of-office\n"+
		"• Email team about coverage\n\n"+
		"💊 Feel better soon! Let me know if you need anything else.",
		rc.employee.LeaveBalance.Sick, orDefault(rc.employee.Manager, unknownManager))
}

func renderVacation(rc *renderContext) string {
	return fmt.Sprintf("🏖️ Vacation Request!\n\n"+
		"I can help you with your vacation planning:\n\n"+
		"✅ You have %d annual leave days\n"+
		"📅 Remember to:\n"+
		"• Submit request 2 weeks in advance\n"+
		"• Coordinate with your team\n"+
		"• Set up out-of-office messages\n"+
		"• Brief your manager on pending tasks\n\n"+
		"🌴 Where are you planning to go? Enjoy your time off!",
		rc.employee.LeaveBalance.Annual)
}

func renderRemoteWork(rc *renderContext) string {
	return fmt.Sprintf("🏠 Remote Work Policy:\n\n%s\n\n"+
		"💡 Based on your profile, you're eligible for remote work options. "+
		"Would you like me to help you plan your remote work schedule?",
		rc.policy(domain.TopicRemoteWork))
}

func renderBenefits(rc *renderContext) string {
	return fmt.Sprintf("💼 TechCorp Benefits Package:\n\n%s\n\n"+
		"🎯 All benefits are active for you as a %s. Need specific benefit details? Just ask!",
		rc.policy(domain.TopicBenefits), orDefault(rc.employee.Position, defaultPosition))
}

func renderLeavePolicy(rc *renderContext) string {
	lb := rc.employee.LeaveBalance
	return fmt.Sprintf("📋 Complete Leave Policy:\n\n%s\n\n"+
		"📊 Your current balance: Annual: %d, Sick: %d, Personal: %d",
		rc.policy(domain.TopicLeavePolicy), lb.Annual, lb.Sick, lb.Personal)
}

func renderProfile(rc *renderContext) string {
	if !rc.found {
		return "❌ Employee information not found. Please contact HR."
	}
	e := rc.employee
	return fmt.Sprintf("👤 Your Employee Profile:\n\n"+
		"🆔 ID: %s\n"+
		"👨‍💼 Name: %s\n"+
		"📧 Email: %s\n"+
		"🏢 Department: %s\n"+
		"💼 Position: %s\n"+
		"👔 Manager: %s\n"+
		"📅 Start Date: %s\n"+
		"📍 Location: %s\n"+
		"📞 Phone: %s\n\n"+
		"💡 Need to update any information? Contact HR at %s",
		e.ID, e.Name, e.Email, e.Department, e.Position, e.Manager,
		e.StartDate, e.Location, e.Phone, rc.company().HREmail)
}

func renderManager(rc *renderContext) string {
	if !rc.found {
		return "❌ Manager information not available."
	}
	return fmt.Sprintf("👔 Your Manager: %s\n\n"+
		"💡 Need their contact info? I can help you find it, or check the company directory.",
		orDefault(rc.employee.Manager, defaultManager))
}

func renderContactInfo(rc *renderContext) string {
	info := rc.company()
	return fmt.Sprintf("📞 TechCorp Contact Information:\n\n%s\n\n"+
		"📧 Key Contacts:\n"+
		"• HR: %s\n"+
		"• IT Support: %s\n"+
		"• Emergency: %s",
		info.Contact, info.HREmail, info.ITSupport, info.Emergency)
}

func renderGratitude(rc *renderContext) string {
	return fmt.Sprintf("😊 You're very welcome, %s!\n\n"+
		"I'm here 24/7 to help with all your workplace needs. Feel free to ask me anything about:\n"+
		"• Leave and time off\n"+
		"• Company policies\n"+
		"• Employee information\n"+
		"• Benefits and perks\n\n"+
		"Have a great day! 🌟", rc.name())
}

func renderFallback(rc *renderContext) string {
	return fmt.Sprintf("🤔 I understand you're asking about: \"%s\"\n\n"+
		"Based on my knowledge base, I can help you with various topics. Could you be more specific? For example:\n\n"+
		"🏖️ \"What's my leave balance?\"\n"+
		"🏠 \"What's the remote work policy?\"\n"+
		"👤 \"Show my profile\"\n"+
		"💼 \"What benefits do we have?\"\n"+
		"🤒 \"I need sick leave tomorrow\"\n\n"+
		"Just ask me anything in natural language! 💬", rc.message)
}
