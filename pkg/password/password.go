package password

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinLength longitud mínima aceptada para contraseñas nuevas.
const MinLength = 8

// Hash genera el hash bcrypt de una contraseña en texto plano.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara el hash almacenado contra la contraseña en texto plano.
// Devuelve false si no coinciden.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Score puntúa la fortaleza de una contraseña de 0 (muy débil) a 4 (fuerte).
// Es la misma heurística que muestra el formulario de registro del dashboard:
// longitud, mayúsculas/minúsculas, dígitos y símbolos suman un punto cada uno.
func Score(plain string) int {
	if len(plain) < MinLength {
		return 0
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	score := 1
	if hasUpper && hasLower {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}
	if len(plain) >= 12 && score < 4 {
		score++
	}
	// Penalizar contraseñas obvias aunque cumplan los requisitos de forma
	lowered := strings.ToLower(plain)
	for _, common := range []string{"password", "contraseña", "12345678", "qwerty"} {
		if strings.Contains(lowered, common) {
			return 1
		}
	}
	return score
}
