package lexer

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// punctuation characters that split tokens the same way whitespace does
const punctuation = ".,?\"'!;:"

type Lexer struct {
	content []rune
}

type stat struct {
	token string
	freq  int
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(punctuation, r)
}

// TrimLeft trims whitespace and punctuation from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && isSeparator(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next lowercased token, or nil once the content is exhausted
func (l *Lexer) NextToken() []rune {

	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}

	term := l.ChopWhile(func(r rune) bool {
		return !isSeparator(r)
	})

	return []rune(strings.ToLower(string(term)))
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {

	token := l.NextToken()
	if token == nil {
		return "EOF", errors.New("no more tokens")
	}
	return (string(token)), nil
}

// Tokenize returns every word token of content in order, duplicates included
func Tokenize(content string) []string {
	tokens := []string{}
	l := NewLexer(content)
	for {
		token, err := l.Next()
		if err != nil {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// SentenceLengths returns the number of words in each sentence of content.
// Sentences end at '.', '!' or '?'; fragments without words are skipped.
func SentenceLengths(content string) []int {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(content)

	lengths := []int{}
	for _, sentence := range strings.Split(normalized, ".") {
		n := len(strings.Fields(sentence))
		if n == 0 {
			continue
		}
		lengths = append(lengths, n)
	}
	return lengths
}

// ParseHtmlTextContent parses a html string and returns its text content.
// Text nodes are joined with a space so words in adjacent elements stay apart.
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	skip := false
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.StartTagToken:
			name, _ := d.TagName()
			tag := string(name)
			skip = tag == "script" || tag == "style"
		case html.EndTagToken:
			skip = false
		case html.TextToken:
			if skip {
				continue
			}
			if content.Len() > 0 {
				content.WriteByte(' ')
			}
			content.Write(d.Text())
		}
	}
}

// Utility function to sort a map by value, ties broken alphabetically
func MapToSortedSlice(m map[string]int) (stats []stat) {
	for k, v := range m {
		stats = append(stats, stat{token: k, freq: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].freq != stats[j].freq {
			return stats[i].freq > stats[j].freq
		}
		return stats[i].token < stats[j].token
	})

	return stats
}

// Token returns the token of a sorted stat entry
func (s stat) Token() string { return s.token }

// Freq returns the frequency of a sorted stat entry
func (s stat) Freq() int { return s.freq }
