package purity

// builtinAllowList is the static table of dotted global paths known to be
// side-effect free when called. A trailing
// ".*" entry matches any single-member path under that root (e.g.
// "Math.*" matches "Math.floor" but not "Math.random.call").
var builtinAllowList = map[string]bool{
	"Math.*": true,

	"Object.keys":             true,
	"Object.values":           true,
	"Object.entries":          true,
	"Object.freeze":           true,
	"Object.assign":           true,
	"Object.create":           true,
	"Object.getPrototypeOf":   true,
	"Object.is":               true,
	"Object.fromEntries":      true,

	"Array.isArray": true,
	"Array.from":    true,
	"Array.of":      true,

	"Number.isInteger":  true,
	"Number.isFinite":   true,
	"Number.isNaN":      true,
	"Number.isSafeInteger": true,
	"Number.parseFloat": true,
	"Number.parseInt":   true,

	"String.fromCharCode": true,
	"String.fromCodePoint": true,
	"String.raw":           true,

	"JSON.stringify": true,
	"JSON.parse":     true,

	"Symbol.for": true,

	"Reflect.ownKeys": true,
	"Reflect.has":     true,
	"Reflect.get":     true,

	"parseInt":   true,
	"parseFloat": true,
	"isNaN":      true,
	"isFinite":   true,
	"encodeURIComponent": true,
	"decodeURIComponent": true,
	"encodeURI": true,
	"decodeURI": true,
}

// isAllowListedPath answers whether the static ECMAScript/host built-in
// allow-list declares dottedPath pure. This is the single source of truth
// for "globals known pure": anything not found here is treated
// as impure, including a shadowed global (callers are expected to only
// consult this when the identifier actually resolved to the real global,
// i.e. the resolver found no local binding).
func isAllowListedPath(dottedPath string) bool {
	if builtinAllowList[dottedPath] {
		return true
	}
	if idx := lastDot(dottedPath); idx >= 0 {
		root := dottedPath[:idx] + ".*"
		if builtinAllowList[root] {
			return true
		}
	}
	return false
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
