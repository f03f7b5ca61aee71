package repository

import (
	"fmt"
	"strings"

	"github.com/liliang-cn/smartoffice/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadKnowledgeBase builds the knowledge base from the embedded seed table
func LoadKnowledgeBase() (*domain.KnowledgeBase, error) {
	data, err := seedFS.ReadFile(knowledgeSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge seed: %w", err)
	}
	return ParseKnowledgeBase(data)
}

// ParseKnowledgeBase decodes and validates a knowledge base YAML document
func ParseKnowledgeBase(data []byte) (*domain.KnowledgeBase, error) {
	var kb domain.KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge seed: %w", err)
	}

	for _, topic := range domain.PolicyTopics {
		text := strings.TrimSpace(kb.Policies[topic])
		if text == "" {
			return nil, fmt.Errorf("knowledge base: missing policy %q", topic)
		}
		kb.Policies[topic] = text
	}
	if kb.CompanyInfo.HREmail == "" {
		return nil, fmt.Errorf("knowledge base: missing hr_email")
	}

	return &kb, nil
}
