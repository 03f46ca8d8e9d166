/*
Package domain contains the core domain types for the Causeway action core.

It defines the field mapping every log message is assembled from, the
well-known field and status names of the wire format, and the task-level
path scheme that encodes an action's position in its task tree. This
package is kept pure and free of external dependencies like I/O or
transports, following Hexagonal Architecture principles.

# Key Entities

  - Fields: The mutable field mapping a message is assembled from.
  - Task level paths: "/" for a root action, "/2/1/" for its descendants.
  - Status constants: "started", "succeeded", "failed".
*/
package domain
