package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// buildPrompt renders the user-facing prompt for a task, including the
// adapter's specialization so each backend plays to its declared
// strengths.
func buildPrompt(task models.Task, spec registry.Specialization) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Task: %s\n", task.Type)
	fmt.Fprintf(&b, "Description: %s\n", task.Description)

	if len(task.Context) > 0 {
		ctxJSON, err := json.Marshal(task.Context)
		if err == nil {
			fmt.Fprintf(&b, "Context: %s\n", ctxJSON)
		}
	}

	if len(spec.Strengths) > 0 {
		fmt.Fprintf(&b, "\nYou specialize in: %s\n", strings.Join(spec.Strengths, ", "))
	}

	b.WriteString("\nRespond in JSON format with content, confidence, and reasoning.")

	return b.String()
}
