package reporting

import (
	"fmt"
)

// ReportError é um erro com contexto adicional do relatório. O Code é o
// código de API que o handler devolve ao painel.
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo erro de relatório
func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
