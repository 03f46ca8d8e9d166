// Package ports defines the boundary interfaces of the Causeway core:
// the logger a finished message is delivered to, the serializers that
// validate or transform message fields, and the completion capability
// the deferred-finish bridge hangs off of. Adapters live under
// pkg/adapters; the core only ever sees these contracts.
package ports
