package valueobject

import (
	"regexp"
	"strings"

	"github.com/parceiroslab/cadastro-api/internal/domain"
)

// emailPattern: local@dominio.tld com TLD de pelo menos 2 letras.
// O valor já foi passado para minúsculas, então basta a-z.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// personalDomains são os provedores de webmail pessoal conhecidos.
// Lista herdada do cadastro original; não é exaustiva — por isso pode ser
// estendida via configuração (ver RegisterPersonalDomains).
var personalDomains = map[string]struct{}{
	"gmail.com":      {},
	"hotmail.com":    {},
	"yahoo.com":      {},
	"outlook.com":    {},
	"live.com":       {},
	"icloud.com":     {},
	"bol.com.br":     {},
	"uol.com.br":     {},
	"terra.com.br":   {},
	"ig.com.br":      {},
	"globo.com":      {},
	"yahoo.com.br":   {},
	"hotmail.com.br": {},
	"outlook.com.br": {},
}

// RegisterPersonalDomains acrescenta domínios à lista de provedores pessoais.
// Chamar somente na inicialização (antes de atender requisições); a lista não
// é protegida por lock.
func RegisterPersonalDomains(domains ...string) {
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			personalDomains[d] = struct{}{}
		}
	}
}

// Email é um endereço validado e normalizado (minúsculas, sem espaços nas bordas).
type Email struct {
	value string
}

// NewEmail valida e normaliza um endereço de email. Regras, na ordem:
// não vazio, tamanho 5–254, exatamente um @, sem pontos consecutivos,
// sem ponto ou @ nas bordas, e formato geral local@dominio.tld.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, domain.ErrEmptyInput
	}
	if len(v) > 254 {
		return Email{}, domain.ErrEmailTooLong
	}
	if len(v) < 5 {
		return Email{}, domain.ErrEmailTooShort
	}
	switch strings.Count(v, "@") {
	case 0:
		return Email{}, domain.ErrEmailMissingAt
	case 1:
		// ok
	default:
		return Email{}, domain.ErrEmailMultipleAt
	}
	if strings.Contains(v, "..") {
		return Email{}, domain.ErrEmailConsecutiveDots
	}
	if strings.HasPrefix(v, ".") || strings.HasSuffix(v, ".") {
		return Email{}, domain.ErrEmailBoundaryDot
	}
	if strings.HasPrefix(v, "@") || strings.HasSuffix(v, "@") {
		return Email{}, domain.ErrEmailBoundaryAt
	}
	if !emailPattern.MatchString(v) {
		return Email{}, domain.ErrEmailPatternMismatch
	}
	return Email{value: v}, nil
}

// String devolve o endereço normalizado.
func (e Email) String() string { return e.value }

// LocalPart devolve o trecho antes do @.
func (e Email) LocalPart() string {
	at := strings.Index(e.value, "@")
	return e.value[:at]
}

// Domain devolve o trecho depois do @.
func (e Email) Domain() string {
	at := strings.Index(e.value, "@")
	return e.value[at+1:]
}

// IsCorporate informa se o domínio NÃO é um provedor de webmail pessoal.
// Comparação exata e case-insensitive (o valor já está em minúsculas).
func (e Email) IsCorporate() bool {
	_, personal := personalDomains[e.Domain()]
	return !personal
}

// Equals compara pelo endereço normalizado.
func (e Email) Equals(other Email) bool { return e.value == other.value }
