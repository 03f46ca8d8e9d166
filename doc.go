/*
Package causeway tracks causal actions for structured logging: programs
mark the beginning and end of logical units of work, nest them, and emit
start/finish messages that let log consumers rebuild the call tree and
its outcome after the fact.

The root package is the high-level entry point. It wires destinations
(file, memory, redis, prometheus) behind a single fan-out Log and
re-exports the action lifecycle API:

	log := causeway.New(causeway.WithDestination(file.New(os.Stdout)))
	scope := causeway.NewScope()

	act, err := causeway.StartTask(log, "app:rebuild")
	if err != nil {
		return err
	}
	defer act.Enter(scope)(&err)

The lifecycle core lives in pkg/action, the collaborator contracts in
pkg/ports, the destinations under pkg/adapters, and log consumption
(tree reconstruction) in pkg/parse.
*/
package causeway
