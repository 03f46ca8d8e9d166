// Package tree renders reconstructed task trees as indented text for
// the CLI, with status coloring when the output is a terminal.
package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/parse"
)

// Renderer produces the textual tree view.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a renderer. Pass termenv.Ascii to disable color
// (e.g. when stdout is not a terminal), termenv.ColorProfile() to
// auto-detect.
func NewRenderer(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

// Render produces the tree view of a single task:
//
//	a1b2c3d4-... app:main succeeded
//	├── app:step failed (os.PathError: open /tmp/x: no such file)
//	└── app:step succeeded
func (r *Renderer) Render(task *parse.Task) string {
	var sb strings.Builder
	sb.WriteString(task.UUID)
	sb.WriteString(" ")
	sb.WriteString(r.describe(task.Root))
	sb.WriteString("\n")
	r.renderChildren(&sb, task.Root, "")
	return sb.String()
}

// RenderAll renders every task, separated by blank lines.
func (r *Renderer) RenderAll(tasks []*parse.Task) string {
	parts := make([]string, 0, len(tasks))
	for _, task := range tasks {
		parts = append(parts, r.Render(task))
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderChildren(sb *strings.Builder, node *parse.Node, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		if child == nil {
			// Structural gap: messages for a sibling never arrived.
			sb.WriteString(r.style("<missing>", termenv.ANSIYellow))
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(r.describe(child))
		sb.WriteString("\n")
		r.renderChildren(sb, child, childPrefix)
	}
}

func (r *Renderer) describe(node *parse.Node) string {
	name := node.ActionType
	if name == "" {
		name = "<unknown>"
	}

	switch node.Status {
	case string(domain.StatusSucceeded):
		return fmt.Sprintf("%s %s%s", name, r.style("succeeded", termenv.ANSIGreen), successSummary(node))
	case string(domain.StatusFailed):
		return fmt.Sprintf("%s %s (%s: %s)", name, r.style("failed", termenv.ANSIRed), node.Exception, node.Reason)
	case string(domain.StatusStarted):
		return fmt.Sprintf("%s %s", name, r.style("unfinished", termenv.ANSIYellow))
	default:
		return name
	}
}

// successSummary lists the non-identification fields of a success
// finish, so `tail` surfaces result data without a second flag.
func successSummary(node *parse.Node) string {
	if node.Finished == nil {
		return ""
	}
	keys := make([]string, 0, len(node.Finished))
	for k := range node.Finished {
		switch k {
		case domain.FieldTaskUUID, domain.FieldTaskLevel, domain.FieldActionType,
			domain.FieldActionStatus, domain.FieldMessageCounter:
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, node.Finished[k])
	}
	return " " + strings.Join(parts, " ")
}

func (r *Renderer) style(s string, color termenv.Color) string {
	return termenv.String(s).Foreground(r.profile.Convert(color)).String()
}
