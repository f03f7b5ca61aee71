package domain

// Policy topics available in the knowledge base
const (
	TopicLeavePolicy = "leave_policy"
	TopicRemoteWork  = "remote_work"
	TopicBenefits    = "benefits"
)

// PolicyTopics lists every topic the knowledge base must provide
var PolicyTopics = []string{TopicLeavePolicy, TopicRemoteWork, TopicBenefits}

// CompanyInfo holds company-wide contact details
type CompanyInfo struct {
	Contact   string `json:"contact" yaml:"contact"`
	HREmail   string `json:"hr_email" yaml:"hr_email"`
	ITSupport string `json:"it_support" yaml:"it_support"`
	Emergency string `json:"emergency" yaml:"emergency"`
}

// KnowledgeBase holds formatted policy text keyed by topic plus company info
type KnowledgeBase struct {
	Policies    map[string]string `json:"policies" yaml:"policies"`
	CompanyInfo CompanyInfo       `json:"company_info" yaml:"company_info"`
}

// Policy returns the text for a topic, or an empty string
func (kb *KnowledgeBase) Policy(topic string) string {
	if kb == nil {
		return ""
	}
	return kb.Policies[topic]
}
