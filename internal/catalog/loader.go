package catalog

import (
	_ "embed"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// builtinYAML ships the default catalogs inside the binary.
//
//go:embed data/builtin.yaml
var builtinYAML []byte

// yamlKeys maps each catalog kind to its key in catalog YAML documents.
var yamlKeys = map[Kind]string{
	KindTemplate: "templates",
	KindAgent:    "agents",
	KindTeam:     "teams",
}

// Builtin parses the embedded default catalogs. The result is validated:
// every item is well formed and slugs are unique within a kind.
func Builtin() (map[Kind][]Item, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(builtinYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	return unmarshalCatalogs(k)
}

// LoadFile parses a user-supplied catalog overlay from a YAML file. Missing
// kinds are fine; present items are validated the same way as built-ins.
func LoadFile(path string) (map[Kind][]Item, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}
	return unmarshalCatalogs(k)
}

// Merge appends overlay items after the base catalogs. Slugs must stay
// unique across the merged result of each kind.
func Merge(base, overlay map[Kind][]Item) (map[Kind][]Item, error) {
	out := make(map[Kind][]Item, len(base))
	for _, kind := range Kinds() {
		merged := make([]Item, 0, len(base[kind])+len(overlay[kind]))
		merged = append(merged, base[kind]...)
		merged = append(merged, overlay[kind]...)
		if err := checkSlugs(kind, merged); err != nil {
			return nil, err
		}
		out[kind] = merged
	}
	return out, nil
}

func unmarshalCatalogs(k *koanf.Koanf) (map[Kind][]Item, error) {
	out := make(map[Kind][]Item, len(yamlKeys))
	for kind, key := range yamlKeys {
		var items []Item
		if err := k.Unmarshal(key, &items); err != nil {
			return nil, fmt.Errorf("unmarshal %s catalog: %w", key, err)
		}
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return nil, fmt.Errorf("%s catalog: %w", key, err)
			}
		}
		if err := checkSlugs(kind, items); err != nil {
			return nil, err
		}
		out[kind] = items
	}
	return out, nil
}

func checkSlugs(kind Kind, items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.Slug]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateSlug, kind, item.Slug)
		}
		seen[item.Slug] = struct{}{}
	}
	return nil
}
