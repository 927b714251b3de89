package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
	"github.com/parceiroslab/cadastro-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

const partnerColumns = `id, person_type, name, document, email,
		cep, uf, city, street, number, district, complement,
		phone, notes, created_at, updated_at`

// PartnerRepo implementação pgx de PartnerRepository (usável com pool ou tx).
// Guarda as colunas já normalizadas pelo agregado; na leitura o registro passa
// de novo pelas factories (RestorePartner), então linha corrompida vira erro.
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste um novo parceiro. Índices únicos em document e email
// são a garantia final de unicidade; violação vira domain.ErrDuplicate.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, person_type, name, document, email,
			cep, uf, city, street, number, district, complement,
			phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	addr := partner.Address()
	_, err := r.q.Exec(context.Background(), query,
		partner.ID(), partner.PersonType(), partner.Name(),
		partner.Document().String(), partner.Email().String(),
		addr.CEP, addr.UF, addr.City, addr.Street, addr.Number, addr.District, addr.Complement,
		partner.Phone(), partner.Notes(), partner.CreatedAt(), partner.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtém um parceiro por ID. Devolve (nil, nil) se não existir.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByDocument obtém um parceiro pelos dígitos normalizados do documento.
func (r *PartnerRepo) GetByDocument(document string) (*entity.Partner, error) {
	return r.getBy(`WHERE document = $1`, document)
}

// GetByEmail obtém um parceiro pelo email normalizado.
func (r *PartnerRepo) GetByEmail(email string) (*entity.Partner, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *PartnerRepo) getBy(where string, arg any) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ` + where
	row := r.q.QueryRow(context.Background(), query, arg)
	partner, err := scanPartner(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return partner, nil
}

// List lista parceiros ordenados por nome, com paginação.
func (r *PartnerRepo) List(limit, offset int) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, partner)
	}
	return list, rows.Err()
}

// Update atualiza os campos mutáveis de um parceiro (email, telefone, endereço).
func (r *PartnerRepo) Update(partner *entity.Partner) error {
	query := `
		UPDATE partners SET email = $2,
			cep = $3, uf = $4, city = $5, street = $6, number = $7,
			district = $8, complement = $9, phone = $10, updated_at = $11
		WHERE id = $1`
	addr := partner.Address()
	_, err := r.q.Exec(context.Background(), query,
		partner.ID(), partner.Email().String(),
		addr.CEP, addr.UF, addr.City, addr.Street, addr.Number,
		addr.District, addr.Complement, partner.Phone(), partner.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// Delete remove um parceiro por ID.
func (r *PartnerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}

// scanPartner lê uma linha e reidrata o agregado pelas factories do domínio.
func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var (
		id, personType, name, document, email string
		addr                                  entity.Address
		phone, notes                          string
		createdAt, updatedAt                  time.Time
	)
	err := row.Scan(
		&id, &personType, &name, &document, &email,
		&addr.CEP, &addr.UF, &addr.City, &addr.Street, &addr.Number, &addr.District, &addr.Complement,
		&phone, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity.RestorePartner(id, personType, name, document, email, addr, phone, notes, createdAt, updatedAt)
}
