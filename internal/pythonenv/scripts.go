package pythonenv

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed scripts/*.py
var scriptFS embed.FS

// Script returns the content of an embedded probe script by file name.
func Script(name string) ([]byte, error) {
	data, err := scriptFS.ReadFile("scripts/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown probe script %q: %w", name, err)
	}
	return data, nil
}

// ScriptNames lists the embedded probe script file names, sorted.
func ScriptNames() []string {
	entries, err := scriptFS.ReadDir("scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
