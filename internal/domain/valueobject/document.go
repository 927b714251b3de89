// Package valueobject contém os objetos de valor autovalidáveis do cadastro:
// CNPJ, CPF, Email e CEP. Todos são imutáveis e só nascem por factory que
// valida a entrada; instância construída é instância válida.
package valueobject

import "strings"

// Document é a união fechada CNPJ | CPF. O Partner guarda exatamente um
// Document, então "ou CNPJ ou CPF, nunca ambos" é garantido pela estrutura
// e não por checagem em runtime de dois campos anuláveis.
type Document interface {
	// String devolve os dígitos normalizados (chave para busca de duplicados).
	String() string
	// Formatted devolve o documento com a máscara oficial.
	Formatted() string

	isDocument()
}

// cleanDocument remove a máscara usual de documentos brasileiros
// (pontos, barras, hífens e espaços). Não remove outros caracteres:
// letra sobrando deve cair na regra de não-numérico, não sumir.
func cleanDocument(raw string) string {
	r := strings.NewReplacer(".", "", "/", "", "-", "", " ", "")
	return r.Replace(strings.TrimSpace(raw))
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// mod11CheckDigit calcula um dígito verificador por soma ponderada módulo 11:
// resto < 2 resulta 0; caso contrário 11 - resto. Os pesos devem ter o mesmo
// comprimento do trecho de dígitos.
func mod11CheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
