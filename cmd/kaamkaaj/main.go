package main

import (
	"github.com/joho/godotenv"
	"github.com/kaamkaaj/kaamkaaj/internal/app"
)

func main() {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	err := app.NewKaamKaajApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
