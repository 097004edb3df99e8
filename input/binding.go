package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocks-and-bullets/core"
)

// namedKeys maps config key names to tcell special keys
var namedKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
}

// runeAliases maps names for keys that arrive as runes
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// binding is a resolved physical key: either a special key or a rune
type binding struct {
	key  tcell.Key
	char rune
}

// Bindings maps physical terminal keys to logical keys and quit
type Bindings struct {
	actions map[binding]Key
	quit    map[binding]struct{}
}

// ParseBindings resolves per-player action maps (action name -> key name) and quit key names
// players[i] configures core.PlayerID(i); every action must be bound exactly once per player
func ParseBindings(players []map[string]string, quit []string) (*Bindings, error) {
	b := &Bindings{
		actions: make(map[binding]Key),
		quit:    make(map[binding]struct{}),
	}
	owner := make(map[binding]string)

	for i, actions := range players {
		player := core.PlayerID(i)
		for _, name := range ActionNames() {
			keyName, ok := actions[name]
			if !ok {
				return nil, fmt.Errorf("%s: no key bound to %q", player, name)
			}
			action, _ := ActionByName(name)

			phys, err := parseKeyName(keyName)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", player, name, err)
			}
			logical := Key{Player: player, Action: action}
			if prev, dup := owner[phys]; dup {
				return nil, fmt.Errorf("%s: key %q already bound to %s", logical, keyName, prev)
			}
			owner[phys] = logical.String()
			b.actions[phys] = logical
		}
		for name := range actions {
			if _, ok := ActionByName(name); !ok {
				return nil, fmt.Errorf("%s: unknown action %q", player, name)
			}
		}
	}

	for _, keyName := range quit {
		phys, err := parseKeyName(keyName)
		if err != nil {
			return nil, fmt.Errorf("quit: %w", err)
		}
		if prev, dup := owner[phys]; dup {
			return nil, fmt.Errorf("quit: key %q already bound to %s", keyName, prev)
		}
		owner[phys] = "quit"
		b.quit[phys] = struct{}{}
	}

	return b, nil
}

// Lookup returns the logical key for a terminal key event
func (b *Bindings) Lookup(k tcell.Key, r rune) (Key, bool) {
	logical, ok := b.actions[normalize(k, r)]
	return logical, ok
}

// IsQuit reports whether a terminal key event is bound to quit
func (b *Bindings) IsQuit(k tcell.Key, r rune) bool {
	_, ok := b.quit[normalize(k, r)]
	return ok
}

// normalize folds letter case so shift or caps lock do not unbind a player
func normalize(k tcell.Key, r rune) binding {
	if k == tcell.KeyRune {
		return binding{key: tcell.KeyRune, char: unicode.ToLower(r)}
	}
	return binding{key: k}
}

// parseKeyName accepts single characters, rune aliases, special key names and ctrl+<letter>
func parseKeyName(s string) (binding, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if r, ok := runeAliases[name]; ok {
		return binding{key: tcell.KeyRune, char: r}, nil
	}
	if k, ok := namedKeys[name]; ok {
		return binding{key: k}, nil
	}
	if letter, ok := strings.CutPrefix(strings.ReplaceAll(name, "-", "+"), "ctrl+"); ok {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			return binding{key: tcell.KeyCtrlA + tcell.Key(letter[0]-'a')}, nil
		}
		return binding{}, fmt.Errorf("invalid ctrl key %q", s)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return binding{key: tcell.KeyRune, char: r}, nil
	}

	return binding{}, fmt.Errorf("unknown key name %q", s)
}
