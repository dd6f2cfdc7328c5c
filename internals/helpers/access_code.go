package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewAccessCode gera um código de acesso curto (hex maiúsculo) para as
// credenciais das unidades escolares. Nunca retorna vazio.
func NewAccessCode(nBytes int) string {
	if nBytes <= 0 {
		nBytes = 4
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		// gerador do SO indisponível: ainda precisamos de um código não vazio
		return strings.ToUpper(fmt.Sprintf("%x", time.Now().UnixNano()))
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
