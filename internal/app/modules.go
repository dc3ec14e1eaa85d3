package app

import (
	"github.com/vk/evalgridgo/internal/registry"
	"github.com/vk/evalgridgo/modules/concat"
	"github.com/vk/evalgridgo/modules/envvar"
	"github.com/vk/evalgridgo/modules/fail"
	"github.com/vk/evalgridgo/modules/value"
)

// coreModules are the built-in node functions registered by default when no
// explicit module list is supplied.
var coreModules = []registry.Module{
	&value.Module{},
	&concat.Module{},
	&fail.Module{},
	&envvar.Module{},
}
