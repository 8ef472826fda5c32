package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// TextExtension is the only file extension LoadFile accepts.
const TextExtension = ".txt"

// ValidateTextFile checks that filename looks like a readable word list.
func ValidateTextFile(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	if fileInfo.Size() < 1 {
		return fmt.Errorf("file %s is empty", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != TextExtension {
		return fmt.Errorf("file %s has invalid extension %q (expected: %s)", filename, ext, TextExtension)
	}

	log.Debugf("Text file %s validated", filename)
	return nil
}

// LoadFile reads a newline-delimited list from disk.
func LoadFile(filename string) ([]string, error) {
	if err := ValidateTextFile(filename); err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	words, err := ParseList(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), filename)
	return words, nil
}

// ParseList splits r into lines, trimming each and dropping empty ones.
// Order is kept.
func ParseList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
