package round_repo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

const (
	roundsTable    = "rounds"
	colID          = "id"
	colPlayerToken = "player_token"
	colBet         = "bet"
	colSymbols     = "symbols"
	colWin         = "win"
	colCreatedAt   = "created_at"

	txTable     = "transactions"
	colTxID     = "id"
	colRoundID  = "round_id"
	colTxToken  = "player_token"
	colKind     = "kind"
	colAmount   = "amount"
	colTxPlaced = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRound - записывает раунд в журнал
func (r *repo) CreateRound(ctx context.Context, round *model.Round) error {
	// Формируем запрос
	query := sq.Insert(roundsTable).
		Columns(colID, colPlayerToken, colBet, colSymbols, colWin, colCreatedAt).
		Values(round.ID, round.PlayerToken, round.Bet, symbolNames(round.Symbols), round.Win, round.CreatedAt).
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

// GetRound - возвращает записанный раунд по id.
// Возвращает pgx.ErrNoRows, если раунда нет
func (r *repo) GetRound(ctx context.Context, id string) (*model.Round, error) {
	// Формируем запрос
	query := sq.Select(colID, colPlayerToken, colBet, colSymbols, colWin, colCreatedAt).
		From(roundsTable).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)

	return scanRound(row)
}

// ListRoundsByPlayer - раунды игрока для аудита, от новых к старым
func (r *repo) ListRoundsByPlayer(ctx context.Context, token string) ([]model.Round, error) {
	// Формируем запрос
	query := sq.Select(colID, colPlayerToken, colBet, colSymbols, colWin, colCreatedAt).
		From(roundsTable).
		Where(sq.Eq{colPlayerToken: token}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.Round
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, *round)
	}

	return rounds, rows.Err()
}

// CreateTransaction - добавляет запись о движении денег
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(txTable).
		Columns(colTxID, colRoundID, colTxToken, colKind, colAmount, colTxPlaced).
		Values(tx.ID, tx.RoundID, tx.PlayerToken, string(tx.Kind), tx.Amount, tx.CreatedAt).
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

// RemoveTransaction - убирает запись о движении денег.
// Используется только при компенсации: внешний дебет отменен,
// и осиротевшая локальная запись не должна остаться в журнале
func (r *repo) RemoveTransaction(ctx context.Context, id string) error {
	// Формируем запрос
	query := sq.Delete(txTable).
		Where(sq.Eq{colTxID: id}).
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

// ListTransactionsByRound - движения денег раунда в порядке записи
func (r *repo) ListTransactionsByRound(ctx context.Context, roundID string) ([]model.Transaction, error) {
	// Формируем запрос
	query := sq.Select(colTxID, colRoundID, colTxToken, colKind, colAmount, colTxPlaced).
		From(txTable).
		Where(sq.Eq{colRoundID: roundID}).
		OrderBy(colTxPlaced + " ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var (
			tx     model.Transaction
			kind   string
			amount decimal.Decimal
		)
		err = rows.Scan(&tx.ID, &tx.RoundID, &tx.PlayerToken, &kind, &amount, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tx.Kind = model.TransactionKind(kind)
		tx.Amount = amount
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// symbolNames конвертирует символы в строки для колонки text[]
func symbolNames(symbols [3]game.Symbol) []string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.String()
	}
	return names
}

func scanRound(row pgx.Row) (*model.Round, error) {
	var (
		round     model.Round
		bet       decimal.Decimal
		win       decimal.Decimal
		names     []string
		createdAt time.Time
	)
	err := row.Scan(&round.ID, &round.PlayerToken, &bet, &names, &win, &createdAt)
	if err != nil {
		return nil, err
	}

	if len(names) != 3 {
		return nil, errors.New("invalid symbols column: expected 3 elements")
	}
	for i, name := range names {
		s, ok := game.ParseSymbol(name)
		if !ok {
			return nil, errors.New("unknown symbol in round record: " + name)
		}
		round.Symbols[i] = s
	}

	round.Bet = bet
	round.Win = win
	round.CreatedAt = createdAt

	return &round, nil
}
