package action

import "context"

// Scope is the execution context of one logical thread of control: a
// LIFO stack of the actions currently open on it. The top of the stack
// is the implicit parent for new actions started via StartAction.
//
// A Scope performs no locking. Each goroutine owns its own instance;
// sharing one across goroutines is a usage error.
type Scope struct {
	stack []*Action
}

// NewScope returns an empty execution scope.
func NewScope() *Scope {
	return &Scope{}
}

// Push makes act the current action.
func (s *Scope) Push(act *Action) {
	s.stack = append(s.stack, act)
}

// Pop removes the current action. Push and Pop must be strictly nested;
// popping an empty scope is a programming error and panics rather than
// silently corrupting the tree.
func (s *Scope) Pop() {
	if len(s.stack) == 0 {
		panic("causeway: pop of empty action scope")
	}
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
}

// Current returns the action on top of the stack, or nil when the scope
// is empty and a new action would be a root task.
func (s *Scope) Current() *Action {
	if s == nil || len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Depth reports how many actions are currently open on this scope.
func (s *Scope) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.stack)
}

type scopeKey struct{}

// WithScope attaches a scope to ctx so API boundaries that must stay
// implicit (e.g. HTTP middleware) can recover it downstream.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the scope attached to ctx, or a fresh empty scope
// when none is attached. The fresh scope is not retained in ctx; callers
// that need it downstream should attach it with WithScope.
func ScopeFrom(ctx context.Context) *Scope {
	if s, ok := ctx.Value(scopeKey{}).(*Scope); ok {
		return s
	}
	return NewScope()
}
