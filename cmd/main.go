package main

import (
	"github.com/shopspring/decimal"

	"slot_backend/internal/app"
	"slot_backend/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Денежные суммы в JSON сериализуются числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	a := app.NewApp()
	if err := a.Run(); err != nil {
		logger.L().Fatal("server stopped: " + err.Error())
	}
}
