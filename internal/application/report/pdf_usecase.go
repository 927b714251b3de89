package report

import (
	"context"
	"fmt"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/repository"
)

// PDFUseCase monta a ficha cadastral de um parceiro em PDF.
type PDFUseCase struct {
	repo      repository.PartnerRepository
	generator PartnerPDFGenerator
}

// NewPDFUseCase constrói o caso de uso com o repositório e o gerador.
func NewPDFUseCase(repo repository.PartnerRepository, generator PartnerPDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// GenerateSheet devolve os bytes do PDF da ficha cadastral do parceiro.
func (uc *PDFUseCase) GenerateSheet(ctx context.Context, partnerID string) ([]byte, error) {
	partner, err := uc.repo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.generator.GeneratePartnerSheet(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("gerar ficha cadastral: %w", err)
	}
	return pdf, nil
}
