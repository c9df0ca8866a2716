// Package model defines shared data structures.
package model

import "time"

// Direction tells which way a lookup translates.
type Direction string

const (
	// FromNavi looks a Na'vi word up and reconstructs its affixes.
	FromNavi Direction = "navi"
	// ToNavi matches whole words in the glosses of one language.
	ToNavi Direction = "local"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == ToNavi {
		return FromNavi
	}
	return ToNavi
}

// Config defines lookup settings after flags and the config file are merged.
type Config struct {
	Lang      string
	Direction Direction
	DataPath  string
	CacheSize int
	History   bool
	Explain   bool
	IPA       bool
	Syllables bool
}

// HistoryConfig defines filters for the history report.
type HistoryConfig struct {
	Last int
	Top  int
}

// LookupRecord captures one query and how many entries it found.
type LookupRecord struct {
	At        time.Time
	Query     string
	Direction Direction
	Lang      string
	Results   int
}

// QueryAggregate summarizes repeated lookups of the same query.
type QueryAggregate struct {
	Query     string
	Direction Direction
	Count     int
	Hits      int
	LastAt    time.Time
}
