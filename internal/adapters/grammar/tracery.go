// Package grammar loads rule sets from disk and expands them with Tracery
// semantics: #symbol# picks a random alternative of symbol and expands it
// recursively, #symbol.mod# applies modifiers, [key:value] pushes a value for
// key and [key:POP] pops it.
package grammar

import (
	"math/rand/v2"
	"strings"
)

const maxDepth = 64

type Modifier func(string) string

type Grammar struct {
	rules     map[string][]string
	stacks    map[string][][]string
	modifiers map[string]Modifier
	rng       *rand.Rand
}

func New(rules map[string][]string, rng *rand.Rand) *Grammar {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	copied := make(map[string][]string, len(rules))
	for name, options := range rules {
		copied[name] = append([]string(nil), options...)
	}

	return &Grammar{
		rules:     copied,
		stacks:    map[string][][]string{},
		modifiers: map[string]Modifier{},
		rng:       rng,
	}
}

func (g *Grammar) AddModifiers(modifiers map[string]Modifier) {
	for name, modifier := range modifiers {
		g.modifiers[name] = modifier
	}
}

// Expand flattens raw, e.g. "#origin#". Unknown symbols render as
// "((symbol))" so a broken grammar is visible in the output.
func (g *Grammar) Expand(raw string) string {
	return g.flatten(raw, 0)
}

func (g *Grammar) flatten(text string, depth int) string {
	var out strings.Builder

	for i := 0; i < len(text); {
		switch text[i] {
		case '\\':
			if i+1 < len(text) {
				out.WriteByte(text[i+1])
				i += 2
				continue
			}
			out.WriteByte('\\')
			i++
		case '[':
			end := matchBracket(text, i)
			if end < 0 {
				out.WriteString(text[i:])
				return out.String()
			}
			g.runAction(text[i+1:end], depth)
			i = end + 1
		case '#':
			end := closingHash(text, i+1)
			if end < 0 {
				out.WriteString(text[i:])
				return out.String()
			}
			out.WriteString(g.expandTag(text[i+1:end], depth))
			i = end + 1
		default:
			out.WriteByte(text[i])
			i++
		}
	}

	return out.String()
}

// expandTag handles "[k:v]symbol.mod1.mod2". Actions inside a tag only live
// for the duration of that tag.
func (g *Grammar) expandTag(tag string, depth int) string {
	var pushed []string
	for strings.HasPrefix(tag, "[") {
		end := matchBracket(tag, 0)
		if end < 0 {
			break
		}
		if key, ok := g.runAction(tag[1:end], depth); ok {
			pushed = append(pushed, key)
		}
		tag = tag[end+1:]
	}
	defer func() {
		for i := len(pushed) - 1; i >= 0; i-- {
			g.pop(pushed[i])
		}
	}()

	parts := strings.Split(tag, ".")
	symbol, mods := parts[0], parts[1:]

	text := ""
	if symbol != "" {
		text = g.expandSymbol(symbol, depth)
	}

	for _, name := range mods {
		modifier, ok := g.modifiers[name]
		if !ok {
			text += "((." + name + "))"
			continue
		}
		text = modifier(text)
	}

	return text
}

func (g *Grammar) expandSymbol(symbol string, depth int) string {
	if depth >= maxDepth {
		return "((" + symbol + "))"
	}

	options := g.rules[symbol]
	if stack := g.stacks[symbol]; len(stack) > 0 {
		options = stack[len(stack)-1]
	} else if _, ok := g.rules[symbol]; !ok {
		return "((" + symbol + "))"
	}

	if len(options) == 0 {
		return ""
	}

	return g.flatten(options[g.rng.IntN(len(options))], depth+1)
}

// runAction executes "key:value", "key:POP" or a bare "#rule#" whose output
// is discarded. It reports the key when a value was pushed.
func (g *Grammar) runAction(action string, depth int) (string, bool) {
	key, value, ok := strings.Cut(action, ":")
	if !ok {
		g.flatten(action, depth+1)
		return "", false
	}

	if value == "POP" {
		g.pop(key)
		return "", false
	}

	options := strings.Split(value, ",")
	for i, option := range options {
		options[i] = g.flatten(option, depth+1)
	}
	g.stacks[key] = append(g.stacks[key], options)

	return key, true
}

func (g *Grammar) pop(key string) {
	stack := g.stacks[key]
	if len(stack) == 0 {
		return
	}
	if len(stack) == 1 {
		delete(g.stacks, key)
		return
	}
	g.stacks[key] = stack[:len(stack)-1]
}

func matchBracket(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// closingHash finds the '#' ending a tag, skipping over any bracketed action
// that may itself contain '#'.
func closingHash(text string, from int) int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '[':
			end := matchBracket(text, i)
			if end < 0 {
				return -1
			}
			i = end
		case '#':
			return i
		}
	}
	return -1
}
