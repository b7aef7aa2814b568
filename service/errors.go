package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emzola/catalog/data"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
	ErrUnknownField     = errors.New("unknown field")
	ErrFormClosed       = errors.New("form is not open")
)

// User-facing messages.
const (
	MessageRequiredFields = "Título, autor e ISBN são obrigatórios!"
	MessageConnection     = "Erro ao conectar com o servidor"
	PromptDelete          = "Tem certeza que deseja deletar este livro?"
	MessageFormExpired    = "O formulário expirou. Revise os dados e envie novamente."
)

// failedValidation folds a validation error map into a single error, listing the
// fields in form order.
func failedValidation(errorMap map[string]string) error {
	var parts []string
	for _, field := range data.DraftFields {
		if msg, ok := errorMap[field]; ok {
			parts = append(parts, fmt.Sprintf("%q %s", field, msg))
		}
	}
	return fmt.Errorf("%w: %s", ErrFailedValidation, strings.Join(parts, ", "))
}
