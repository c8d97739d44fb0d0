// Package hcl provides the HCL implementation of the config.Loader and
// config.Converter interfaces. It parses `module`, `binding_group` and
// `rule` blocks, evaluates event ids against the `events` variable built from
// the registered module kinds, and binds module `arguments` to Go structs
// through go-cty.
package hcl
