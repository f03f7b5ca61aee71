package repository

import "embed"

// seedFS holds the fixed tables loaded on every process start
//
//go:embed seed/*.yaml
var seedFS embed.FS

const (
	employeesSeed = "seed/employees.yaml"
	knowledgeSeed = "seed/knowledge.yaml"
)
