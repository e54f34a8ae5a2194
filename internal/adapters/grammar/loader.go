package grammar

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	yaml "gopkg.in/yaml.v3"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/bnema/trastodon/internal/ports"
)

var _ ports.GrammarLoader = (*Loader)(nil)

type format struct {
	name  string
	parse func([]byte) (map[string]any, error)
}

// Grammar files are YAML first; JSON (with comments) and TOML are accepted
// when the YAML decoder rejects the document.
var formats = []format{
	{name: "yaml", parse: parseYAML},
	{name: "json", parse: parseJSON},
	{name: "toml", parse: parseTOML},
}

type Loader struct {
	seed uint64
}

// NewLoader returns a loader whose grammars draw from a generator seeded with
// seed. A zero seed picks a fresh one per load.
func NewLoader(seed int64) *Loader {
	return &Loader{seed: uint64(seed)}
}

func (l *Loader) Load(path string) (ports.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGrammarUnreadable, err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}

	g := New(rules, l.newRand())
	g.AddModifiers(BaseEnglish())
	return g, nil
}

func (l *Loader) newRand() *rand.Rand {
	seed := l.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ParseRules decodes a mapping of rule name to a string or a list of
// strings, trying each supported format in turn.
func ParseRules(data []byte) (map[string][]string, error) {
	var errs []error
	for _, f := range formats {
		raw, err := f.parse(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}

		rules, err := normalizeRules(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		return rules, nil
	}

	return nil, fmt.Errorf("%w: %w", domain.ErrGrammarUnreadable, errors.Join(errs...))
}

func parseYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func parseJSON(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func parseTOML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func normalizeRules(raw map[string]any) (map[string][]string, error) {
	if len(raw) == 0 {
		return nil, errors.New("grammar defines no rules")
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make(map[string][]string, len(raw))
	for _, name := range names {
		switch value := raw[name].(type) {
		case []any:
			options := make([]string, 0, len(value))
			for i, item := range value {
				text, ok := scalarText(item)
				if !ok {
					return nil, fmt.Errorf("rule %q: option %d is not a string", name, i)
				}
				options = append(options, text)
			}
			rules[name] = options
		default:
			text, ok := scalarText(value)
			if !ok {
				return nil, fmt.Errorf("rule %q: expected a string or a list of strings", name)
			}
			rules[name] = []string{text}
		}
	}

	return rules, nil
}

func scalarText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
