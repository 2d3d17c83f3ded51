package lexemes

import "strings"

// ModuleId is an interned handle of a module path.
type ModuleId uint32

// ModuleLookup resolves qualifiers to modules. It is consulted read-only while scanning.
type ModuleLookup interface {
	LookupModule(qualifier []string) (ModuleId, bool)
}

// ModuleTable interns module paths.
type ModuleTable struct {
	ids   map[string]ModuleId
	paths [][]string
}

var _ ModuleLookup = new(ModuleTable)

func NewModuleTable() *ModuleTable {
	return &ModuleTable{
		ids: make(map[string]ModuleId),
	}
}

func (m *ModuleTable) Intern(path []string) ModuleId {
	key := strings.Join(path, ".")
	if id, ok := m.ids[key]; ok {
		return id
	}
	m.paths = append(m.paths, append([]string(nil), path...))
	id := ModuleId(len(m.paths))
	m.ids[key] = id
	return id
}

func (m *ModuleTable) LookupModule(qualifier []string) (ModuleId, bool) {
	id, ok := m.ids[strings.Join(qualifier, ".")]
	return id, ok
}

func (m *ModuleTable) Path(id ModuleId) ([]string, bool) {
	if id == 0 || int(id) > len(m.paths) {
		return nil, false
	}
	return m.paths[id-1], true
}
