package helpers

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// ParseID reads a positive integer path id.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(StringTrim(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ExtractToken pulls the credential out of an Authorization header. Both
// "Bearer <t>" and "Token <t>" are accepted.
func ExtractToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") && !strings.EqualFold(parts[0], "Token") {
		return "", false
	}
	token := StringTrim(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
