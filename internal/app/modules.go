package app

import (
	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/specialistvlad/eventbinder/modules/chassis"
	"github.com/specialistvlad/eventbinder/modules/cmd"
	"github.com/specialistvlad/eventbinder/modules/dr16"
	"github.com/specialistvlad/eventbinder/modules/plain"
	"github.com/specialistvlad/eventbinder/modules/relay"
)

// coreModules is the definitive list of all module kinds compiled into the binary.
var coreModules = []registry.Module{
	&dr16.Module{},
	&chassis.Module{},
	&cmd.Module{},
	&plain.Module{},
	&relay.Module{},
}

// CoreModules returns a copy of the compiled-in module kinds, so callers can
// extend the set passed to NewApp.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
