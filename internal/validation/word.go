package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrEmptyWord is returned when no usable word was provided
	ErrEmptyWord = errors.New("no valid word was provided")

	// ErrMultipleWords is returned when the input contains more than one word
	ErrMultipleWords = errors.New("input contains multiple words")

	// ErrInvalidWord is returned when the input contains only special characters
	ErrInvalidWord = errors.New("input word contains only special characters")
)

var nonLetterRegex = regexp.MustCompile(`[^a-zA-Z]`)

// CleanWord validates and normalizes a submitted human word into the
// single cleaned token the game engine expects:
//
//   - multi-word input is rejected
//   - double quotes are stripped
//   - input with no letters or digits at all is rejected
//   - when letters are present, everything that is not a letter is removed
func CleanWord(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyWord
	}

	if strings.Contains(raw, " ") {
		return "", ErrMultipleWords
	}

	word := strings.ReplaceAll(raw, `"`, "")

	if !containsAlphanumeric(word) {
		return "", ErrInvalidWord
	}

	if containsLetter(word) {
		if cleaned := nonLetterRegex.ReplaceAllString(word, ""); cleaned != "" {
			word = cleaned
		}
	}

	if word == "" {
		return "", ErrEmptyWord
	}
	return word, nil
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
