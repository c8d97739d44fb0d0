// Package binding wires module events together at startup.
//
// A [Registry] is an ordered association list of module names to event
// endpoints. [Install] walks a list of [Group] values and, for every [Rule]
// whose source and target names both resolve, asks the target endpoint to
// forward the rule's source event id to its own target event id.
//
// Rules naming a module that is not registered are skipped without failing:
// a binding list written for a full robot must still wire up a build that
// leaves optional modules out. Skipped rules are recorded in the [Report]
// returned by [Install] and logged at debug level. A failing [Endpoint.Bind]
// call aborts installation and is returned to the caller.
//
// The package never delivers events itself. Endpoint implementations (see the
// event package) own delivery, ordering and concurrency.
//
// # Two-phase construction
//
//	b := binding.Create(modules, groups)
//	// ... anything that must happen before the first forward is installed
//	report, err := b.FinishInstall(ctx)
//
// [New] runs both phases in a single call.
package binding
