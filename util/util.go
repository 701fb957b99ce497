package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/deanrtaylor1/gosource/lexer"
	"github.com/deanrtaylor1/gosource/logger"
)

// maxBodySize bounds documents fetched over http
const maxBodySize = 10 * 1024 * 1024

// IsURL reports whether location should be fetched over http rather than read from disk
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ReadDocument returns the text of the document at location.
// URLs are fetched and reduced to their article text, html files to their text content.
// Invalid UTF-8 is dropped.
func ReadDocument(ctx context.Context, location string, timeout time.Duration) (string, error) {
	if IsURL(location) {
		return fetchArticle(ctx, location, timeout)
	}

	content, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("error reading document: %w", err)
	}
	text := strings.ToValidUTF8(string(content), "")

	switch strings.ToLower(filepath.Ext(location)) {
	case ".html", ".htm":
		return lexer.ParseHtmlTextContent(text), nil
	default:
		return text, nil
	}
}

func fetchArticle(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("error parsing url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error accessing site: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error accessing site: got status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("error reading html response body: %w", err)
	}
	if len(body) > maxBodySize {
		return "", fmt.Errorf("response body exceeded maximum size of %d bytes", maxBodySize)
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", fmt.Errorf("error extracting article: %w", err)
	}
	logger.HandleDebug("fetched %s: %d bytes of html, %d bytes of text", rawURL, len(body), len(article.TextContent))
	return strings.ToValidUTF8(article.TextContent, ""), nil
}

func CheckDirIsValid(dirName string) (bool, error) {
	info, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return info.IsDir(), nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
