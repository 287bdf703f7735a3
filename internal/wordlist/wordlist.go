// Package wordlist loads the banned-word set: one word per line,
// lowercased, lines starting with # ignored.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

const placeholder = "# Add one word per line. Lines starting with # are ignored.\n"

// Set is an immutable collection of normalized banned words.
type Set map[string]struct{}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s)
}

// New builds a set from the given words, lowerccasing each.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Load reads the wordlist at path. A missing file is not an error: an
// empty placeholder is written so the user has something to edit, and
// an empty set is returned.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(path, []byte(placeholder), 0644); werr != nil {
				return nil, werr
			}
			return Set{}, nil
		}
		return nil, err
	}
	defer f.Close()

	set := Set{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
