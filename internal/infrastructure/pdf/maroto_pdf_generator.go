// Package pdf implementa a geração da Ficha Cadastral do Parceiro.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do parceiro  │  Tipo de pessoa + Documento    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IDENTIFICAÇÃO: documento formatado + email + classificação │
//	│  ENDEREÇO: CEP / UF / cidade / logradouro / nº / bairro     │
//	│  CONTATO: telefone + observações                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: datas de cadastro e atualização                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/parceiroslab/cadastro-api/internal/application/report"
	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PartnerPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.PartnerPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePartnerSheet gera o PDF da ficha cadastral e devolve seus bytes.
func (g *MarotoPDFGenerator) GeneratePartnerSheet(_ context.Context, partner *entity.Partner) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha Cadastral de Parceiro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(partner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(identityRows(partner)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(addressRows(partner)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(contactRows(partner)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(partner))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do parceiro (esq) e tipo de pessoa + documento (dir).
func headerRow(partner *entity.Partner) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(partner.Name(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("FICHA CADASTRAL DE PARCEIRO", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(partner.PersonTypeLabel(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(partner.FormattedDocument(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 9,
			}),
		),
	)
}

// identityRows: documento e email com a classificação pessoal/corporativo.
func identityRows(partner *entity.Partner) []core.Row {
	docLabel := "CNPJ"
	if partner.IsNaturalPerson() {
		docLabel = "CPF"
	}
	emailKind := "pessoal"
	if partner.HasCorporateEmail() {
		emailKind = "corporativo"
	}
	return []core.Row{
		sectionTitle("IDENTIFICAÇÃO"),
		fieldRow(docLabel, partner.FormattedDocument()),
		fieldRow("Email", fmt.Sprintf("%s (%s)", partner.Email().String(), emailKind)),
	}
}

// addressRows: bloco do endereço postal.
func addressRows(partner *entity.Partner) []core.Row {
	addr := partner.Address()
	street := fmt.Sprintf("%s, %s", addr.Street, addr.Number)
	if addr.Complement != "" {
		street += " - " + addr.Complement
	}
	return []core.Row{
		sectionTitle("ENDEREÇO"),
		fieldRow("Logradouro", street),
		fieldRow("Bairro", addr.District),
		fieldRow("Cidade/UF", fmt.Sprintf("%s/%s", addr.City, addr.UF)),
		fieldRow("CEP", addr.CEP),
	}
}

// contactRows: telefone e observações livres.
func contactRows(partner *entity.Partner) []core.Row {
	rows := []core.Row{
		sectionTitle("CONTATO"),
		fieldRow("Telefone", partner.Phone()),
	}
	if partner.Notes() != "" {
		rows = append(rows, fieldRow("Observações", partner.Notes()))
	}
	return rows
}

// footerRow: carimbos de cadastro e última atualização.
func footerRow(partner *entity.Partner) core.Row {
	const layout = "02/01/2006 15:04"
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cadastrado em %s   |   Atualizado em %s",
				partner.CreatedAt().Format(layout),
				partner.UpdatedAt().Format(layout),
			), props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2}),
		),
	)
}

// ── Helpers de layout ─────────────────────────────────────────────────────────

func sectionTitle(title string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func fieldRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(
			text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		),
		col.New(9).Add(
			text.New(value, props.Text{Size: 9, Top: 1}),
		),
	)
}
