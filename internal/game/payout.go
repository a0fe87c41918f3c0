package game

import "github.com/shopspring/decimal"

// Evaluate считает выигрыш раунда: ставка умножается на множитель символа,
// если все три символа совпали, иначе выигрыш нулевой.
// Символ вне таблицы выплат трактуется как нулевой выигрыш
func Evaluate(symbols [3]Symbol, bet decimal.Decimal) decimal.Decimal {
	if symbols[0] != symbols[1] || symbols[1] != symbols[2] {
		return decimal.Zero
	}
	if !symbols[0].Valid() {
		return decimal.Zero
	}
	return bet.Mul(symbols[0].Multiplier())
}
