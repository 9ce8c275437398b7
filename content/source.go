package content

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/lixenwraith/typefall/components"
)

//go:embed wordlist.txt
var embeddedWordList string

// ErrEmptyList is returned when a source parses to zero usable words
var ErrEmptyList = errors.New("word list is empty")

// CommentPrefixes defines the prefixes that identify comment lines
var CommentPrefixes = []string{"//", "#"}

// Source supplies candidate words
// Load is called once per spawn attempt; implementations decide whether to cache
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// FileSource reads a newline-delimited word file on every Load
type FileSource struct {
	Path string
}

// NewFileSource creates a source backed by the file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and parses the file
func (fs *FileSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", fs.Path, err)
	}
	defer file.Close()

	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", fs.Path, err)
	}
	return words, nil
}

// EmbeddedSource serves the word list compiled into the binary
type EmbeddedSource struct{}

// Load parses the embedded list
func (EmbeddedSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(strings.NewReader(embeddedWordList))
}

// CachedSource keeps the first successful result of the wrapped source
// Failed loads are not cached, so the next spawn attempt tries again
type CachedSource struct {
	mu    sync.Mutex
	inner Source
	words []string
}

// NewCachedSource wraps inner with result caching
func NewCachedSource(inner Source) *CachedSource {
	return &CachedSource{inner: inner}
}

// Load returns the cached list or loads it from the wrapped source
func (cs *CachedSource) Load(ctx context.Context) ([]string, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.words != nil {
		return cs.words, nil
	}

	words, err := cs.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	cs.words = words
	return words, nil
}

// Invalidate drops the cached list
func (cs *CachedSource) Invalidate() {
	cs.mu.Lock()
	cs.words = nil
	cs.mu.Unlock()
}

// isCommentLine checks if a line starts with any comment prefix
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// Parse reads one word per line, trimming whitespace and skipping blank and comment lines
// Words with runes that cannot be typed are dropped, as are duplicates, keeping first occurrence order
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isCommentLine(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	words = lo.Uniq(lo.Filter(words, func(w string, _ int) bool {
		return components.Typeable(w)
	}))
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

// WithLength returns the words whose rune count is exactly n
func WithLength(words []string, n int) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) == n
	})
}

// LengthHistogram counts words per rune length, used for startup diagnostics
func LengthHistogram(words []string) map[int]int {
	return lo.CountValuesBy(words, func(w string) int {
		return utf8.RuneCountInString(w)
	})
}
