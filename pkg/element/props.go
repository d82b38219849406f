package element

import (
	"sort"
	"strings"
)

// propertyMap is a string map that remembers first-insertion order. Setting
// an existing key overwrites its value but keeps its position, which gives
// the last-write-wins merge semantics a stable serialization order.
type propertyMap struct {
	keys   []string
	values map[string]string
}

func newPropertyMap() *propertyMap {
	return &propertyMap{values: make(map[string]string)}
}

// Set stores a value under the lower-cased key. Property and attribute name
// matching is case-insensitive throughout the engine.
func (m *propertyMap) Set(key, value string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *propertyMap) Get(key string) (string, bool) {
	value, ok := m.values[strings.ToLower(strings.TrimSpace(key))]
	return value, ok
}

func (m *propertyMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-insertion order.
func (m *propertyMap) Keys() []string {
	return m.keys
}

// classSet is an ordered, de-duplicating collection of class tokens.
type classSet struct {
	tokens []string
	seen   map[string]bool
}

func newClassSet() *classSet {
	return &classSet{seen: make(map[string]bool)}
}

func (s *classSet) add(token string) {
	token = strings.TrimSpace(token)
	if token == "" || s.seen[token] {
		return
	}
	s.seen[token] = true
	s.tokens = append(s.tokens, token)
}

// addTokens splits a space-separated class attribute value and adds each token.
func (s *classSet) addTokens(value string) {
	for _, token := range strings.Fields(value) {
		s.add(token)
	}
}

func (s *classSet) values() []string {
	return s.tokens
}

// sortedKeys returns the map's keys in sorted order. Theme bundles live in
// plain maps, so merging them in sorted order keeps renders byte-identical.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
