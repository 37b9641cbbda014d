package generator

import (
	"strconv"
	"strings"
)

// NameKind partitions the name table: the same logical name may map to
// different identifiers when used as a variable and as a procedure.
type NameKind int

const (
	NameVariable NameKind = iota
	NameProcedure
	NameDeveloper
)

// nameTable maps logical workspace names to collision-free C++ identifiers.
// One table lives for one generation run; Get is memoized so a logical name
// resolves identically everywhere it appears in that run.
type nameTable struct {
	reserved map[string]bool
	used     map[string]bool
	memo     map[NameKind]map[string]string
}

func newNameTable(reservedWords []string) *nameTable {
	t := &nameTable{
		reserved: make(map[string]bool, len(reservedWords)),
		used:     make(map[string]bool),
		memo:     make(map[NameKind]map[string]string),
	}
	for _, w := range reservedWords {
		t.reserved[w] = true
	}
	return t
}

// Get resolves a logical name of the given kind, assigning and memoizing a
// safe identifier on first use.
func (t *nameTable) Get(name string, kind NameKind) string {
	byName := t.memo[kind]
	if byName == nil {
		byName = make(map[string]string)
		t.memo[kind] = byName
	}
	if id, ok := byName[name]; ok {
		return id
	}
	id := t.claim(sanitizeName(name, kind))
	byName[name] = id
	return id
}

// Distinct picks a fresh identifier near the requested name without
// memoizing it. Loop counters and synthesized temporaries use this so each
// call site gets its own binding.
func (t *nameTable) Distinct(name string, kind NameKind) string {
	return t.claim(sanitizeName(name, kind))
}

func (t *nameTable) claim(base string) string {
	id := base
	for n := 2; t.reserved[id] || t.used[id]; n++ {
		id = base + strconv.Itoa(n)
	}
	t.used[id] = true
	return id
}

// sanitizeName rewrites a logical name into identifier form: runs of
// non-identifier characters collapse to underscores, a leading digit gets a
// kind-specific prefix, and an empty result falls back to a stock name.
func sanitizeName(name string, kind NameKind) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range name {
		ok := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if ok {
			sb.WriteRune(r)
			lastUnderscore = r == '_'
			continue
		}
		if !lastUnderscore {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	id := strings.Trim(sb.String(), "_")
	if id == "" {
		id = "unnamed"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "v_" + id
	}
	if kind == NameDeveloper {
		id = "blockc_" + id
	}
	return id
}
