package envutil

import (
	"os"
	"regexp"
	"strings"
)

// winEnvPattern matches Windows-style %VAR% references.
var winEnvPattern = regexp.MustCompile(`%([^%\\/]+)%`)

// fallbacks cover roots that exist on every Windows install but can be
// missing from a stripped environment (services, schedulers). Only these
// two get a hard-coded default; everything else must be genuinely set.
var fallbacks = map[string]string{
	"WINDIR":      `C:\Windows`,
	"SYSTEMDRIVE": `C:`,
}

// ExpandWindowsEnv expands environment variable references in a path,
// supporting both Windows %VAR% and Unix $VAR / ${VAR} syntax.
// Unset variables expand to the empty string.
func ExpandWindowsEnv(path string) string {
	expanded, _ := expand(path)
	return expanded
}

// ExpandStrict expands like ExpandWindowsEnv but additionally reports
// whether every referenced variable was set to a non-empty value. Callers
// resolving filesystem patterns must treat ok=false as "no matches" rather
// than proceeding with a half-expanded path.
func ExpandStrict(path string) (string, bool) {
	return expand(path)
}

func expand(path string) (string, bool) {
	ok := true

	lookup := func(name string) string {
		v, found := os.LookupEnv(name)
		if found && v != "" {
			return v
		}
		if fb, has := fallbacks[strings.ToUpper(name)]; has {
			return fb
		}
		ok = false
		return ""
	}

	s := winEnvPattern.ReplaceAllStringFunc(path, func(ref string) string {
		return lookup(ref[1 : len(ref)-1])
	})
	s = os.Expand(s, lookup)

	return s, ok
}
