package player_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

const (
	table       = "players"
	colToken    = "token"
	colOperator = "operator"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// UpsertPlayer - регистрирует токен игрока за оператором.
// Повторная вставка того же токена не делает ничего
func (r *repo) UpsertPlayer(ctx context.Context, player *model.Player) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colToken, colOperator).
		Values(player.Token, player.Operator).
		Suffix("ON CONFLICT (" + colToken + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
