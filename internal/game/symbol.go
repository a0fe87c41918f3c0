package game

import "github.com/shopspring/decimal"

// Symbol - закрытое перечисление игровых символов.
// Порядок объявления фиксирует порядок накопления вероятностей при генерации
type Symbol int

const (
	SymbolOrange Symbol = iota
	SymbolGrape
	SymbolCherry
	SymbolBell
)

// Symbols - все символы в порядке объявления
var Symbols = [...]Symbol{SymbolOrange, SymbolGrape, SymbolCherry, SymbolBell}

// defaultSymbol - символ, возвращаемый при накопленной погрешности округления
const defaultSymbol = SymbolOrange

var symbolNames = map[Symbol]string{
	SymbolOrange: "🍊",
	SymbolGrape:  "🍇",
	SymbolCherry: "🍒",
	SymbolBell:   "🔔",
}

// Вероятности выпадения. Сумма по всем символам равна 1
var symbolProbs = map[Symbol]float64{
	SymbolOrange: 0.5,
	SymbolGrape:  0.25,
	SymbolCherry: 0.15,
	SymbolBell:   0.1,
}

// Множители выплат (кратность от ставки)
var symbolPayouts = map[Symbol]int64{
	SymbolOrange: 1,
	SymbolGrape:  4,
	SymbolCherry: 8,
	SymbolBell:   20,
}

func (s Symbol) String() string {
	return symbolNames[s]
}

// Probability возвращает вероятность выпадения символа
func (s Symbol) Probability() float64 {
	return symbolProbs[s]
}

// Multiplier возвращает множитель выплаты символа
func (s Symbol) Multiplier() decimal.Decimal {
	return decimal.NewFromInt(symbolPayouts[s])
}

// Valid проверяет, что символ входит в перечисление
func (s Symbol) Valid() bool {
	_, ok := symbolNames[s]
	return ok
}

// ParseSymbol восстанавливает символ из строкового представления (для чтения из БД)
func ParseSymbol(name string) (Symbol, bool) {
	for _, s := range Symbols {
		if symbolNames[s] == name {
			return s, true
		}
	}
	return defaultSymbol, false
}
