package ports

// Completion represents an asynchronous operation whose outcome arrives
// later. It is the capability the deferred-finish bridge requires: any
// future-like type that can register a continuation qualifies.
//
// Implementations must invoke every registered continuation exactly
// once, with either the operation's value (err == nil) or its failure.
// Registering after the operation has settled must still fire the
// continuation.
type Completion interface {
	Subscribe(fn func(value any, err error))
}
