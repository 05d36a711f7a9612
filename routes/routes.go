// Package routes exposes the core's named operations over HTTP. Handlers are
// thin: parse input, build the actor identity, call the core, render the
// result or envelope.
package routes

import "github.com/parkerholladay/odyssey-voyage-II-server/core"

var (
	Core     *core.Core
	Resolver *core.Resolver
)

// Configure wires the handlers to a core instance. Called once from main and
// from tests with mock providers.
func Configure(c *core.Core, r *core.Resolver) {
	Core = c
	Resolver = r
}
