package search

import (
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/fwew/internal/affix"
	"github.com/verte-zerg/fwew/internal/dictionary"
)

// Searcher answers lookups against one dictionary. It is safe for concurrent use.
type Searcher struct {
	dict      *dictionary.Dictionary
	cacheSize int
	cache     *lru.Cache[string, []dictionary.Word]
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithCache keeps up to size recent results. Zero or less disables caching.
func WithCache(size int) Option {
	return func(s *Searcher) {
		s.cacheSize = size
	}
}

// New builds a Searcher over dict.
func New(dict *dictionary.Dictionary, opts ...Option) (*Searcher, error) {
	if dict == nil {
		return nil, fmt.Errorf("dictionary is nil")
	}
	s := &Searcher{dict: dict}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheSize > 0 {
		cache, err := lru.New[string, []dictionary.Word](s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// TranslateFromNavi returns every entry that the query is a form of, in
// dictionary order. An empty query yields no results.
func (s *Searcher) TranslateFromNavi(query string) []dictionary.Word {
	q := NormalizeQuery(query)
	if q == "" {
		return nil
	}
	return s.cached("navi\x00"+q, func() []dictionary.Word {
		return s.fromNavi(q)
	})
}

func (s *Searcher) fromNavi(q string) []dictionary.Word {
	var results []dictionary.Word
	for _, w := range s.dict.Words() {
		root := w.Data.Navi
		w.Data.Navi = rootKey(root)

		if w.Data.Navi == q {
			w.Data.Navi = root
			w.Attempt, w.Target = q, q
			results = append(results, w)
			continue
		}
		if Similarity(w.Data.Navi, q) < Threshold && !strings.HasSuffix(q, genitiveSuffix) {
			continue
		}
		if got, ok := affix.Reconstruct(w, q); ok {
			got.Data.Navi = root
			results = append(results, got)
		}
	}
	return results
}

// TranslateToNavi returns entries whose gloss in lang contains query as a whole word.
func (s *Searcher) TranslateToNavi(query, lang string) []dictionary.Word {
	q := strings.ToLower(strings.TrimSpace(nfc(query)))
	if q == "" {
		return nil
	}
	lang = strings.ToLower(lang)
	return s.cached("local\x00"+lang+"\x00"+q, func() []dictionary.Word {
		var results []dictionary.Word
		for _, w := range s.dict.Words() {
			if slices.Contains(glossTokens(w.Gloss(lang)), q) {
				results = append(results, w)
			}
		}
		return results
	})
}

// Search runs both directions: Na'vi matches first, then gloss matches in lang.
func (s *Searcher) Search(lang, query string) []dictionary.Word {
	results := s.TranslateFromNavi(query)
	return append(results, s.TranslateToNavi(query, lang)...)
}

// cached runs lookup on a miss; callers always get their own copies.
func (s *Searcher) cached(key string, lookup func() []dictionary.Word) []dictionary.Word {
	if s.cache == nil {
		return lookup()
	}
	if hit, ok := s.cache.Get(key); ok {
		return cloneAll(hit)
	}
	results := lookup()
	s.cache.Add(key, cloneAll(results))
	return results
}

func cloneAll(words []dictionary.Word) []dictionary.Word {
	if words == nil {
		return nil
	}
	out := make([]dictionary.Word, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}

// Explain replays the reconstruction behind a TranslateFromNavi result and
// returns the stages it ran. Exact matches have a single init stage.
func Explain(w dictionary.Word) []affix.Step {
	if w.Target == "" {
		return nil
	}
	base := w.Clone()
	base.Data.Navi = rootKey(w.Data.Navi)
	base.Data.Affixes = dictionary.Affixes{}
	base.Attempt, base.Target = "", ""
	_, _, steps := affix.ReconstructTrace(base, w.Target)
	return steps
}
