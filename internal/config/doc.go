// Package config defines the format-agnostic configuration model: the robot
// modules to instantiate and the binding groups to install between them,
// together with the Loader and Converter interfaces that concrete formats
// (see the hcl package) implement.
//
// `config.Model` is the single source of truth for the registry and app
// packages; neither of them knows which file format produced it.
package config
