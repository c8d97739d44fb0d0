// Package registry is the glue between configuration and Go code.
//
// Module packages register their kinds here: the name used in a `module`
// block's `kind` attribute, the symbolic event ids the kind understands, and
// a constructor for its event endpoint. The registry then validates the
// declared modules against the registered kinds and instantiates one
// endpoint per enabled module, ready to be handed to the binding package.
package registry
