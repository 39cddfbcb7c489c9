package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyllex94/orderexpress-api/pkg/password"
)

func TestHashYVerify(t *testing.T) {
	hash, err := password.Hash("S3gura!Clave")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, password.Verify(hash, "S3gura!Clave"))
	assert.False(t, password.Verify(hash, "otra-clave"))
}

func TestScore(t *testing.T) {
	cases := []struct {
		plain string
		want  int
	}{
		{"corta", 0},                // < 8 caracteres
		{"minusculas", 1},           // solo minúsculas
		{"Mayusculas", 2},           // mayúsculas + minúsculas
		{"Mayuscula1", 3},           // + dígito
		{"Mayus1!xx", 4},            // + símbolo
		{"password123ABC!", 1},      // substring común penaliza
		{"Qwerty12345!", 1},         // idem
		{"sinmayusculaspero12+", 4}, // dígito + símbolo + bonus por longitud ≥ 12
	}
	for _, c := range cases {
		assert.Equal(t, c.want, password.Score(c.plain), "password %q", c.plain)
	}
}
