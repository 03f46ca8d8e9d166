package ports

import "github.com/aretw0/causeway/pkg/domain"

// Serializer validates and optionally transforms a field mapping before
// it is handed to the logger. A returned error is propagated to the
// caller of the operation that produced the message; it is never
// swallowed or retried by the core.
type Serializer func(fields domain.Fields) (domain.Fields, error)

// ActionSerializers bundles the three independent serializers of an
// action type: one for the start message, one for the success finish and
// one for the failure finish. Any entry may be nil, meaning no
// validation or transformation for that phase.
type ActionSerializers struct {
	Start   Serializer
	Success Serializer
	Failure Serializer
}
