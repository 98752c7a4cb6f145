package demangle

import (
	"fmt"

	"github.com/ianlancetaylor/demangle"
)

// Modes accepted by Options, in the order they are listed in help output.
var Modes = []string{"none", "simplified", "templates", "full"}

var (
	None       = []demangle.Option{}
	Simplified = []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	Templates  = []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	Full       = []demangle.Option{demangle.NoClones}
)

// Options converts a mode name to demangler options. An empty result means
// names are kept as they are.
func Options(mode string) ([]demangle.Option, error) {
	switch mode {
	case "none":
		return None, nil
	case "simplified":
		return Simplified, nil
	case "templates":
		return Templates, nil
	case "full":
		return Full, nil
	default:
		return nil, fmt.Errorf("unknown demangle mode %q", mode)
	}
}

// Name demangles a C++ or Rust symbol name. Names that are not mangled are
// returned unchanged.
func Name(name string, opts []demangle.Option) string {
	if len(opts) == 0 {
		return name
	}
	return demangle.Filter(name, opts...)
}
