package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/riveting/internal/search"
)

// Overlay highlights where a running screen is on the diagram.
type Overlay struct {
	Visited []search.Kind
	Current search.Kind
}

// GenerateMermaid produces a Mermaid state diagram from transitions,
// starting at initial. A non-nil overlay styles visited and current kinds.
func GenerateMermaid(initial search.Kind, transitions []search.Transition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&sb, "    [*] --> %s\n", sanitizeID(initial))

	seen := make(map[string]bool)
	for _, t := range transitions {
		line := fmt.Sprintf("    %s --> %s: %s\n", sanitizeID(t.From), sanitizeID(t.To), escapeLabel(t.Label()))
		if seen[line] {
			continue
		}
		seen[line] = true
		sb.WriteString(line)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		visited := make(map[string]bool)
		for _, k := range overlay.Visited {
			id := sanitizeID(k)
			if id == "" || visited[id] || k == overlay.Current {
				continue
			}
			visited[id] = true
			fmt.Fprintf(&sb, "    class %s visited\n", id)
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current\n", sanitizeID(overlay.Current))
		}
	}

	return sb.String()
}

// sanitizeID makes a kind safe as a Mermaid state ID. "error" and "end"
// are reserved words in some Mermaid renderers.
func sanitizeID(k search.Kind) string {
	s := strings.NewReplacer(".", "_", "-", "_", "/", "_", " ", "_").Replace(string(k))
	switch s {
	case "error", "end":
		return s + "_state"
	}
	return s
}

func escapeLabel(label string) string {
	return strings.NewReplacer(":", " ", "\"", "'").Replace(label)
}
