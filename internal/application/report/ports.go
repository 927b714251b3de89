// Package report gera a ficha cadastral do parceiro em PDF.
package report

import (
	"context"

	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
)

// PartnerPDFGenerator porta para o gerador de PDF da ficha cadastral.
type PartnerPDFGenerator interface {
	GeneratePartnerSheet(ctx context.Context, partner *entity.Partner) ([]byte, error)
}
