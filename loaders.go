package localize

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads translation files keyed by combined locale ID:
//
//	en-US:
//	  nav.home: "Home"
//	  cart.item:
//	    value: "{count} item"
//	    context: "checkout"
//
// A payload is either a bare string or a map carrying value, context,
// gender, pluralCategory and variables. JSON files follow the same
// shape.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given file paths. Later files
// override earlier ones key by key.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file into per-pair translation maps.
func (l *FileLoader) Load() (map[string]map[string]TranslationValue, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("localize: no loader paths configured")
	}

	buckets := make(map[string]map[string]TranslationValue)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localize: read %s: %w", path, err)
		}
		decoded, err := decodeTranslationFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("localize: decode %s: %w", path, err)
		}
		for pair, values := range decoded {
			bucket, ok := buckets[pair]
			if !ok {
				bucket = make(map[string]TranslationValue, len(values))
				buckets[pair] = bucket
			}
			for key, value := range values {
				bucket[key] = value
			}
		}
	}
	return buckets, nil
}

// LoadStore decodes the configured files into a ready MemoryStore.
func (l *FileLoader) LoadStore() (*MemoryStore, error) {
	seed, err := l.Load()
	if err != nil {
		return nil, err
	}
	return NewMemoryStoreFromSeed(seed), nil
}

func decodeTranslationFile(path string, data []byte) (map[string]map[string]TranslationValue, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var raw map[string]map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return decodeBuckets(path, raw, buildValueFromJSON)
	case ".yaml", ".yml":
		var raw map[string]map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
		return decodeBuckets(path, raw, buildValueFromYAML)
	default:
		return nil, fmt.Errorf("unsupported extension %s", filepath.Ext(path))
	}
}

func decodeBuckets[T any](path string, raw map[string]map[string]T, build func(key string, payload T) (TranslationValue, error)) (map[string]map[string]TranslationValue, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty translation file")
	}

	result := make(map[string]map[string]TranslationValue, len(raw))
	for pair, payloads := range raw {
		langCode, marketCode := splitCombinedID(pair)
		if langCode == "" {
			return nil, fmt.Errorf("empty locale identifier in %s", path)
		}
		normalized := CombinedID(langCode, marketCode)

		bucket := make(map[string]TranslationValue, len(payloads))
		for key, payload := range payloads {
			if key == "" {
				return nil, fmt.Errorf("empty key in %s/%s", pair, path)
			}
			value, err := build(key, payload)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", pair, key, err)
			}
			bucket[key] = value
		}
		result[normalized] = bucket
	}
	return result, nil
}

// translationPayload is the structured file shape for a single value.
type translationPayload struct {
	Value          string            `json:"value" yaml:"value"`
	Context        string            `json:"context" yaml:"context"`
	Gender         string            `json:"gender" yaml:"gender"`
	PluralCategory string            `json:"pluralCategory" yaml:"pluralCategory"`
	Variables      map[string]string `json:"variables" yaml:"variables"`
}

func (p translationPayload) toValue(key string) (TranslationValue, error) {
	if p.Value == "" {
		return TranslationValue{}, errors.New("missing value field")
	}
	return TranslationValue{
		Key:            key,
		Value:          p.Value,
		Context:        p.Context,
		Gender:         p.Gender,
		PluralCategory: PluralCategory(p.PluralCategory),
		Variables:      p.Variables,
	}, nil
}

func buildValueFromJSON(key string, raw json.RawMessage) (TranslationValue, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return TranslationValue{Key: key, Value: text}, nil
	}

	var payload translationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return TranslationValue{}, errors.New("unsupported translation payload")
	}
	return payload.toValue(key)
}

func buildValueFromYAML(key string, raw any) (TranslationValue, error) {
	switch v := raw.(type) {
	case string:
		return TranslationValue{Key: key, Value: v}, nil
	case map[string]any:
		encoded, err := yaml.Marshal(v)
		if err != nil {
			return TranslationValue{}, err
		}
		var payload translationPayload
		if err := yaml.Unmarshal(encoded, &payload); err != nil {
			return TranslationValue{}, err
		}
		return payload.toValue(key)
	default:
		return TranslationValue{}, fmt.Errorf("unsupported translation value type: %T", raw)
	}
}
