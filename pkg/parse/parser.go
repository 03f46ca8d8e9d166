// Package parse reconstructs task trees from the flat message stream a
// causeway-instrumented program emits. Feed it raw field maps in any
// order; it groups them by task UUID and hangs actions off each other
// by their level paths.
package parse

import (
	"fmt"

	"github.com/aretw0/causeway/pkg/domain"
)

// Node is one action in a reconstructed task tree.
type Node struct {
	Level      string
	ActionType string
	Status     string
	Exception  string
	Reason     string

	// Started and Finished hold the raw fields of the two lifecycle
	// messages; either may be nil while the stream is still partial.
	Started  domain.Fields
	Finished domain.Fields

	// Children are ordered by child index; entries may be nil when a
	// descendant's messages arrived before its sibling's.
	Children []*Node
}

// Failed reports whether the action finished with a failure.
func (n *Node) Failed() bool {
	return n.Status == string(domain.StatusFailed)
}

// Task is a reconstructed action tree sharing one task UUID.
type Task struct {
	UUID string
	Root *Node
}

// Parser accumulates messages into task trees.
type Parser struct {
	tasks map[string]*Task
	order []string
}

// NewParser returns an empty parser.
func NewParser() *Parser {
	return &Parser{tasks: make(map[string]*Task)}
}

// Add folds one raw message into the trees. Messages missing a task
// UUID or level are rejected; unknown statuses are rejected too, since
// a typo here would otherwise vanish silently.
func (p *Parser) Add(fields domain.Fields) error {
	env, err := DecodeEnvelope(fields)
	if err != nil {
		return err
	}
	if env.TaskUUID == "" || env.TaskLevel == "" {
		return fmt.Errorf("message missing task identification: %v", fields)
	}

	indexes, err := ParseLevel(env.TaskLevel)
	if err != nil {
		return err
	}

	task, ok := p.tasks[env.TaskUUID]
	if !ok {
		task = &Task{UUID: env.TaskUUID, Root: &Node{Level: domain.RootLevel}}
		p.tasks[env.TaskUUID] = task
		p.order = append(p.order, env.TaskUUID)
	}

	node := task.Root
	for _, idx := range indexes {
		node = node.ensureChild(idx, domain.ChildLevel(node.Level, idx))
	}

	switch env.ActionStatus {
	case string(domain.StatusStarted):
		node.ActionType = env.ActionType
		node.Started = fields.Clone()
		if node.Status == "" {
			node.Status = env.ActionStatus
		}
	case string(domain.StatusSucceeded), string(domain.StatusFailed):
		node.ActionType = env.ActionType
		node.Status = env.ActionStatus
		node.Exception = env.Exception
		node.Reason = env.Reason
		node.Finished = fields.Clone()
	case "":
		// Free-form message logged within the action; nothing to hang
		// on the tree structure itself.
	default:
		return fmt.Errorf("unknown action status %q", env.ActionStatus)
	}
	return nil
}

// Lookup returns the task for a UUID, or domain.ErrTaskNotFound.
func (p *Parser) Lookup(uuid string) (*Task, error) {
	task, ok := p.tasks[uuid]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// Tasks returns every reconstructed task in first-seen order.
func (p *Parser) Tasks() []*Task {
	out := make([]*Task, 0, len(p.order))
	for _, uuid := range p.order {
		out = append(out, p.tasks[uuid])
	}
	return out
}

// ensureChild grows the children slice to hold the 1-based index and
// returns the node there, creating it on first sight.
func (n *Node) ensureChild(idx int, level string) *Node {
	for len(n.Children) < idx {
		n.Children = append(n.Children, nil)
	}
	if n.Children[idx-1] == nil {
		n.Children[idx-1] = &Node{Level: level}
	}
	return n.Children[idx-1]
}
