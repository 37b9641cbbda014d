package generator

import "strings"

// helperNamePlaceholder marks where a helper template wants its generated
// function name substituted.
const helperNamePlaceholder = "%HELPER_NAME%"

// DefineHelper registers a shared utility function, memoized by key. The
// first call for a key picks a collision-free name, substitutes it for the
// placeholder in tmpl, and records the definition for the finish step.
// Later calls with the same key return the same name without re-registering.
func (g *Generator) DefineHelper(key, tmpl string) string {
	if name, ok := g.helperKeys[key]; ok {
		return name
	}
	name := g.names.Get(key, NameDeveloper)
	g.helperKeys[key] = name
	g.helperDefs = append(g.helperDefs, strings.ReplaceAll(tmpl, helperNamePlaceholder, name))
	return name
}

// AddInclude records an include directive, deduplicated by key. The
// collected directives are sorted and prepended by the finish step.
func (g *Generator) AddInclude(key, directive string) {
	g.includes[key] = directive
}
