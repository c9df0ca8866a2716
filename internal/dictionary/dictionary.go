package dictionary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed data/words.json
var embeddedWords []byte

// Source supplies the raw dictionary records. It is called at most once per Dictionary.
type Source func() ([]WordData, error)

// Embedded returns the dictionary table shipped with the binary.
func Embedded() Source {
	return FromJSON(embeddedWords)
}

// FromJSON decodes a JSON array of records.
func FromJSON(data []byte) Source {
	return func() ([]WordData, error) {
		var entries []WordData
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode dictionary: %w", err)
		}
		return entries, nil
	}
}

// FromFile reads a JSON dictionary export from disk.
func FromFile(path string) Source {
	return func() ([]WordData, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary: %w", err)
		}
		return FromJSON(data)()
	}
}

// FromEntries serves records that are already in memory.
func FromEntries(entries []WordData) Source {
	entries = slices.Clone(entries)
	return func() ([]WordData, error) {
		return entries, nil
	}
}

// Dictionary is the ordered list of canonical entries, built once on first use
// and never modified afterwards.
type Dictionary struct {
	src   Source
	once  sync.Once
	words []Word
	err   error
}

// New returns a Dictionary that reads src on first use.
func New(src Source) *Dictionary {
	return &Dictionary{src: src}
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	return New(Embedded())
})

// Default returns the process-wide dictionary over the embedded table.
func Default() *Dictionary {
	return defaultDictionary()
}

// Load builds the dictionary if needed and reports the load error, if any.
func (d *Dictionary) Load() error {
	d.once.Do(func() {
		if d.src == nil {
			d.err = fmt.Errorf("dictionary source is nil")
			return
		}
		entries, err := d.src()
		if err != nil {
			d.err = err
			return
		}
		words := make([]Word, 0, len(entries))
		for i, entry := range entries {
			if err := validate(entry); err != nil {
				d.err = fmt.Errorf("invalid dictionary entry %d: %w", i, err)
				return
			}
			words = append(words, NewWord(entry))
		}
		d.words = words
	})
	return d.err
}

func validate(entry WordData) error {
	if strings.TrimSpace(entry.Navi) == "" {
		return fmt.Errorf("empty root")
	}
	if !utf8.ValidString(entry.Navi) {
		return fmt.Errorf("root %q is not valid UTF-8", entry.Navi)
	}
	if !utf8.ValidString(entry.InfixLocations) {
		return fmt.Errorf("infix template of %q is not valid UTF-8", entry.Navi)
	}
	return nil
}

// Words returns deep copies of every entry in storage order.
// It returns nil when the dictionary failed to load.
func (d *Dictionary) Words() []Word {
	if d.Load() != nil {
		return nil
	}
	out := make([]Word, len(d.words))
	for i, w := range d.words {
		out[i] = w.Clone()
	}
	return out
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d.Load() != nil {
		return 0
	}
	return len(d.words)
}
