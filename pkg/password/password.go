package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TempPasswordLength largo de las contraseñas temporales generadas en reset.
const TempPasswordLength = 8

// Hash genera un hash bcrypt con salt aleatorio. Dos llamadas con la misma
// contraseña producen hashes distintos.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña en texto plano contra el hash almacenado.
// Un hash malformado cuenta como no coincidencia, nunca como pánico.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateTemporary genera una contraseña temporal de 8 caracteres alfanuméricos
// usando crypto/rand (no un PRNG predecible).
func GenerateTemporary() (string, error) {
	buf := make([]byte, TempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordChars[n.Int64()]
	}
	return string(buf), nil
}
