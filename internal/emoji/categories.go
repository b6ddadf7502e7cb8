// Package emoji is the symbol source for players: built-in categories, custom
// categories and random draws.
package emoji

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
)

const (
	CustomCategoryName = "Custom"

	// UnknownSymbol is drawn for a category the catalog does not know.
	UnknownSymbol = "❓"

	defaultCustomIcon = "🎨"
)

type Category struct {
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Symbols []string `json:"symbols"`
}

var builtinCategories = []Category{
	{Name: "Animals", Icon: "🐶", Symbols: []string{"🐶", "🐱", "🐵", "🐰", "🦊", "🐻", "🐼", "🐨"}},
	{Name: "Food", Icon: "🍔", Symbols: []string{"🍕", "🍟", "🍔", "🍩", "🌮", "🍎", "🍌", "🍓"}},
	{Name: "Sports", Icon: "⚽", Symbols: []string{"⚽", "🏀", "🏈", "🎾", "🏐", "🏓", "🥎", "🏸"}},
	{Name: "Nature", Icon: "🌸", Symbols: []string{"🌸", "🌺", "🌻", "🌷", "🌹", "🌿", "🍀", "🌳"}},
	{Name: "Space", Icon: "🚀", Symbols: []string{"🚀", "🛸", "⭐", "🌟", "🌙", "☄️", "🪐", "🌍"}},
	{Name: "Vehicles", Icon: "🚗", Symbols: []string{"🚗", "🚕", "🚙", "🚌", "🚎", "🏎️", "🚓", "🚑"}},
}

type intn interface {
	Intn(n int) int
}

// Catalog looks up categories and draws random symbols. It is safe for concurrent use.
type Catalog struct {
	mu         sync.Mutex
	rnd        intn
	categories []Category
}

// NewCatalog returns a catalog with the built-in categories. A nil rnd seeds one from the clock.
func NewCatalog(rnd intn) *Catalog {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game symbols, not secrets
	}

	categories := make([]Category, 0, len(builtinCategories))
	for _, category := range builtinCategories {
		categories = append(categories, category.clone())
	}

	return &Catalog{
		rnd:        rnd,
		categories: categories,
	}
}

func (that Category) clone() Category {
	that.Symbols = append([]string(nil), that.Symbols...)
	return that
}

// Category returns the built-in category with the given name, ignoring case.
func (that *Catalog) Category(name string) (Category, error) {
	for _, category := range that.categories {
		if strings.EqualFold(category.Name, name) {
			return category.clone(), nil
		}
	}

	return Category{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCategory, name)
}

func (that *Catalog) Categories() []Category {
	categories := make([]Category, 0, len(that.categories))
	for _, category := range that.categories {
		categories = append(categories, category.clone())
	}

	return categories
}

func (that *Catalog) Names() []string {
	names := make([]string, 0, len(that.categories))
	for _, category := range that.categories {
		names = append(names, category.Name)
	}

	return names
}

// RandomEmoji draws a symbol from a built-in category.
func (that *Catalog) RandomEmoji(category string) string {
	found, err := that.Category(category)
	if err != nil {
		return UnknownSymbol
	}

	return that.Pick(found.Symbols)
}

// Pick draws one of symbols, or UnknownSymbol when there are none.
func (that *Catalog) Pick(symbols []string) string {
	if len(symbols) == 0 {
		return UnknownSymbol
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return symbols[that.rnd.Intn(len(symbols))]
}

// NewCustomCategory builds the Custom category from user symbols. Duplicates are dropped,
// at most maxSymbols are kept and at least minSymbols distinct ones are required.
func NewCustomCategory(symbols []string, minSymbols, maxSymbols int) (Category, error) {
	seen := make(map[string]struct{}, len(symbols))
	unique := make([]string, 0, len(symbols))

	for _, symbol := range symbols {
		if _, ok := seen[symbol]; ok || symbol == "" {
			continue
		}

		seen[symbol] = struct{}{}
		unique = append(unique, symbol)
	}

	if len(unique) < minSymbols {
		return Category{}, fmt.Errorf("%w: need at least %d distinct emojis, got %d",
			apperror.ErrInvalidCategorySelection, minSymbols, len(unique))
	}

	if maxSymbols > 0 && len(unique) > maxSymbols {
		unique = unique[:maxSymbols]
	}

	icon := defaultCustomIcon
	if len(unique) > 0 {
		icon = unique[0]
	}

	return Category{
		Name:    CustomCategoryName,
		Icon:    icon,
		Symbols: unique,
	}, nil
}

// ParseSymbols splits free text into emoji symbols. Each grapheme cluster is one symbol,
// so sequences joined with ZWJ or variation selectors stay whole. Plain ASCII and
// whitespace are skipped.
func ParseSymbols(text string) []string {
	var symbols []string

	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		if isEmojiCluster(cluster) {
			symbols = append(symbols, cluster)
		}
	}

	return symbols
}

func isEmojiCluster(cluster string) bool {
	for _, r := range cluster {
		if r > unicode.MaxASCII && unicode.IsGraphic(r) && !unicode.IsSpace(r) && !isModifier(r) {
			return true
		}
	}

	return false
}

// isModifier reports runes that only decorate a neighbouring emoji.
func isModifier(r rune) bool {
	const (
		variationSelector16 = '\uFE0F'
		zeroWidthJoiner     = '\u200D'
	)

	return r == variationSelector16 || r == zeroWidthJoiner
}
