package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds generation settings for one run. Reserved words are supplied
// here rather than derived, so a deployment can extend the set when emitted
// code links against additional libraries.
type Config struct {
	// ReservedWords lists identifiers the name table must never produce:
	// language keywords plus standard-library names the emitted code uses
	// unqualified.
	ReservedWords []string `yaml:"reserved_words"`
	// Indent is the unit of indentation for nested statement blocks.
	Indent string `yaml:"indent"`
	// OneBasedIndex selects workspace indexing. When true, index inputs
	// are normalized to zero-based before emission.
	OneBasedIndex bool `yaml:"one_based_index"`
	// InterpMarker is an extra character Quote escapes, for targets whose
	// string literals treat it as an interpolation introducer. Empty for
	// plain C++.
	InterpMarker string `yaml:"interp_marker"`
}

// cppKeywords is every C++ keyword plus the alternative operator tokens.
var cppKeywords = []string{
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char16_t", "char32_t",
	"char8_t", "class", "co_await", "co_return", "co_yield", "compl",
	"concept", "const", "const_cast", "consteval", "constexpr", "constinit",
	"continue", "decltype", "default", "delete", "do", "double",
	"dynamic_cast", "else", "enum", "explicit", "export", "extern", "false",
	"float", "for", "friend", "goto", "if", "inline", "int", "long",
	"mutable", "namespace", "new", "noexcept", "not", "not_eq", "nullptr",
	"operator", "or", "or_eq", "private", "protected", "public", "register",
	"reinterpret_cast", "requires", "return", "short", "signed", "sizeof",
	"static", "static_assert", "static_cast", "struct", "switch", "template",
	"this", "thread_local", "throw", "true", "try", "typedef", "typeid",
	"typename", "union", "unsigned", "using", "virtual", "void", "volatile",
	"wchar_t", "while", "xor", "xor_eq",
}

// cppLibraryNames covers the unqualified identifiers generated code relies
// on. std-qualified names cannot collide and are not listed.
var cppLibraryNames = []string{
	"main", "std", "cin", "cout", "endl", "string", "vector", "size_t",
	"abs", "pow", "fmod", "floor", "ceil", "round", "sqrt",
	"min", "max", "rand", "srand",
}

// DefaultConfig returns the stock C++ settings: two-space indent,
// one-based workspace indexing, no interpolation marker.
func DefaultConfig() Config {
	reserved := make([]string, 0, len(cppKeywords)+len(cppLibraryNames))
	reserved = append(reserved, cppKeywords...)
	reserved = append(reserved, cppLibraryNames...)
	return Config{
		ReservedWords: reserved,
		Indent:        "  ",
		OneBasedIndex: true,
	}
}

// LoadConfig reads a YAML settings file and overlays it on DefaultConfig.
// Reserved words in the file extend the default set rather than replace it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	var overlay struct {
		ReservedWords []string `yaml:"reserved_words"`
		Indent        *string  `yaml:"indent"`
		OneBasedIndex *bool    `yaml:"one_based_index"`
		InterpMarker  *string  `yaml:"interp_marker"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	cfg.ReservedWords = append(cfg.ReservedWords, overlay.ReservedWords...)
	if overlay.Indent != nil {
		cfg.Indent = *overlay.Indent
	}
	if overlay.OneBasedIndex != nil {
		cfg.OneBasedIndex = *overlay.OneBasedIndex
	}
	if overlay.InterpMarker != nil {
		cfg.InterpMarker = *overlay.InterpMarker
	}
	return cfg, nil
}
