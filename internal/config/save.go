package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveThemePreset updates theme.preset in the config file. Comments
// and formatting in other sections survive because the file is edited
// through yaml.Node rather than re-marshalled from a struct.
func SaveThemePreset(configPath string, preset string) error {
	return saveScalar(configPath, []string{"theme", "preset"}, preset)
}

// SaveDefaultType updates default_type in the config file.
func SaveDefaultType(configPath string, typeID string) error {
	if err := ValidateDefaultType(typeID); err != nil {
		return err
	}
	return saveScalar(configPath, []string{"default_type"}, typeID)
}

// saveScalar sets a (possibly nested) scalar key in the YAML document
// at configPath, creating intermediate mappings as needed, then writes
// the file atomically.
func saveScalar(configPath string, path []string, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("unexpected config document structure")
	}

	node := doc.Content[0]
	for _, key := range path[:len(path)-1] {
		node = findOrCreateMapping(node, key)
		if node == nil {
			return fmt.Errorf("config key %q is not a mapping", key)
		}
	}
	setScalarKey(node, path[len(path)-1], value)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// findOrCreateMapping returns the mapping node under key, creating an
// empty one if the key is absent. Returns nil when the key exists but
// holds a non-mapping value.
func findOrCreateMapping(root *yaml.Node, key string) *yaml.Node {
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == key {
			child := root.Content[i+1]
			if child.Kind != yaml.MappingNode {
				return nil
			}
			return child
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return child
}

// setScalarKey replaces or appends a scalar value under key.
func setScalarKey(root *yaml.Node, key, value string) {
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Value: value}
			return
		}
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value},
	)
}

// writeAtomic writes data to path via a temp file and rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".curato.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
