// Package app contains the application bootstrap: it builds the logger,
// registers the compiled-in module kinds, loads the wiring configuration,
// instantiates module endpoints and installs their bindings. Run then fires
// requested events and serves health and diagnostics over HTTP, decoupled
// from any specific entrypoint like a CLI.
package app
