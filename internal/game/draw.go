package game

import "math/rand"

// Draw делает один взвешенный розыгрыш символа.
// Использует глобальный источник math/rand, безопасный для конкурентных вызовов
func Draw() Symbol {
	return DrawFrom(rand.Float64())
}

// DrawFrom выбирает символ по равномерной величине u из [0,1).
// Идем по символам в порядке объявления и возвращаем первый, чья накопленная
// вероятность не меньше u. Если из-за округления сумма не дотянула до u,
// возвращаем символ по умолчанию
func DrawFrom(u float64) Symbol {
	cumulative := 0.0
	for _, s := range Symbols {
		cumulative += symbolProbs[s]
		if u <= cumulative {
			return s
		}
	}
	return defaultSymbol
}
