// Package naming normalizes user-supplied names before they are stored or
// compared. Nicknames are Unicode text (Hangul, Latin, digits) and must compare
// equal regardless of how the client composed them, so every name is put into
// NFC form first.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// NormalizeNickname trims and NFC-normalizes a character nickname and checks
// its length and alphabet. Comparison stays case-sensitive.
func NormalizeNickname(raw string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	if err := checkLength(name, MinNicknameLength, MaxNicknameLength); err != nil {
		return "", fmt.Errorf("%w: nickname %s", domain.ErrInvalidInput, err)
	}
	for _, r := range name {
		if !isNicknameRune(r) {
			return "", fmt.Errorf("%w: nickname "+ErrMsgInvalidRune, domain.ErrInvalidInput, r)
		}
	}
	return name, nil
}

// NormalizeUserID trims and NFC-normalizes a login id. Login ids are limited to
// ASCII letters, digits, '_' and '-'.
func NormalizeUserID(raw string) (string, error) {
	id := norm.NFC.String(strings.TrimSpace(raw))
	if err := checkLength(id, MinUserIDLength, MaxUserIDLength); err != nil {
		return "", fmt.Errorf("%w: userId %s", domain.ErrInvalidInput, err)
	}
	for _, r := range id {
		if !isUserIDRune(r) {
			return "", fmt.Errorf("%w: userId "+ErrMsgInvalidRune, domain.ErrInvalidInput, r)
		}
	}
	return id, nil
}

func checkLength(s string, lo, hi int) error {
	if s == "" {
		return errors.New(ErrMsgEmpty)
	}
	if n := utf8.RuneCountInString(s); n < lo || n > hi {
		return fmt.Errorf(ErrMsgLength, lo, hi)
	}
	return nil
}

func isNicknameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func isUserIDRune(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-')
}
