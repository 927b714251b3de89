package domain

import "errors"

// Erros de validação dos documentos (CNPJ/CPF). Entrada rejeitada, nunca pânico.
var (
	ErrEmptyInput       = errors.New("entrada vazia")
	ErrInvalidLength    = errors.New("quantidade de dígitos inválida")
	ErrNonNumeric       = errors.New("contém caracteres não numéricos")
	ErrRepeatedDigits   = errors.New("todos os dígitos são iguais")
	ErrChecksumMismatch = errors.New("dígitos verificadores não conferem")
)

// Erros de validação de email.
var (
	ErrEmailTooLong         = errors.New("email excede 254 caracteres")
	ErrEmailTooShort        = errors.New("email tem menos de 5 caracteres")
	ErrEmailMissingAt       = errors.New("email sem @")
	ErrEmailMultipleAt      = errors.New("email com mais de um @")
	ErrEmailConsecutiveDots = errors.New("email com pontos consecutivos")
	ErrEmailBoundaryDot     = errors.New("email começa ou termina com ponto")
	ErrEmailBoundaryAt      = errors.New("email começa ou termina com @")
	ErrEmailPatternMismatch = errors.New("email fora do formato local@dominio.tld")
)

// Erros do agregado e da aplicação.
var (
	ErrRequiredField      = errors.New("campo obrigatório")
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrLookupUnavailable  = errors.New("serviço de consulta indisponível")
)

// FieldError associa uma regra violada ao campo ofensor, para que a camada de
// apresentação consiga montar a mensagem por campo do formulário.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError embala uma regra violada com o nome do campo.
func NewFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// MissingRequiredField indica campo obrigatório ausente ou em branco.
func MissingRequiredField(field string) error {
	return &FieldError{Field: field, Err: ErrRequiredField}
}

// FieldOf devolve o campo ofensor se err for um FieldError; vazio caso contrário.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}

// IsValidation informa se err é entrada rejeitada (HTTP 400 na borda).
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyInput, ErrInvalidLength, ErrNonNumeric, ErrRepeatedDigits, ErrChecksumMismatch,
		ErrEmailTooLong, ErrEmailTooShort, ErrEmailMissingAt, ErrEmailMultipleAt,
		ErrEmailConsecutiveDots, ErrEmailBoundaryDot, ErrEmailBoundaryAt, ErrEmailPatternMismatch,
		ErrRequiredField, ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
