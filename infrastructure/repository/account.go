// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/pkg/utils"
)

const (
	accountsTable = "marketplace_accounts"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.MarketplaceAccount, error)
	ListAccounts(onlyActive bool) ([]*domain.MarketplaceAccount, error)
	SaveOrUpdate(account *domain.MarketplaceAccount) (*domain.MarketplaceAccount, error)
	UpdateLastSync(accountID string, syncedAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

const accountColumns = "id, name, kind, credentials, active, last_sync_at, created_at, updated_at"

func (r *accountRepository) GetAccountByID(accountID string) (*domain.MarketplaceAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(accountSQL, accountArgs...)

	account, err := r.deserializeAccount(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(onlyActive bool) ([]*domain.MarketplaceAccount, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": true})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.MarketplaceAccount, 0)
	for rows.Next() {
		account, err := r.deserializeAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// SaveOrUpdate grava uma conta nova ou atualiza uma existente. As
// credenciais são serializadas como JSON e decodificadas de volta para o
// mapa tipado na leitura.
func (r *accountRepository) SaveOrUpdate(account *domain.MarketplaceAccount) (*domain.MarketplaceAccount, error) {
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o id da conta: %w", err)
		}
		account.ID = id
	}

	credentials, err := json.Marshal(account.Credentials)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar as credenciais: %w", err)
	}

	query := squirrel.
		Insert(accountsTable).
		Columns("id", "name", "kind", "credentials", "active").
		Values(account.ID, account.Name, account.Kind, credentials, account.Active).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				kind = EXCLUDED.kind,
				credentials = EXCLUDED.credentials,
				active = EXCLUDED.active,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return account, nil
}

// UpdateLastSync marca o fim de um ciclo de sincronização. É chamado
// incondicionalmente ao final do ciclo, com sucesso ou falha, para o
// operador saber quando foi a última tentativa.
func (r *accountRepository) UpdateLastSync(accountID string, syncedAt time.Time) error {
	updateSQL, updateArgs, err := squirrel.
		Update(accountsTable).
		Set("last_sync_at", syncedAt).
		Set("updated_at", syncedAt).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

func (r *accountRepository) deserializeAccount(scan func(...any) error) (*domain.MarketplaceAccount, error) {
	account := &domain.MarketplaceAccount{}
	var credentials []byte

	if err := scan(
		&account.ID,
		&account.Name,
		&account.Kind,
		&credentials,
		&account.Active,
		&account.LastSyncAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(credentials) > 0 {
		if err := json.Unmarshal(credentials, &account.Credentials); err != nil {
			return nil, fmt.Errorf("erro ao decodificar as credenciais da conta %s: %w", account.ID, err)
		}
	}

	return account, nil
}
