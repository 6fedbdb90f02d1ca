// Command gen regenerates the typed gorm query package from the persistence models.
package main

import (
	"flag"
	"log/slog"
	"os"

	"expatmart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated query code")
	withTests := flag.Bool("unit-tests", false, "also generate unit test scaffolding")
	flag.Parse()

	models := model.AllModels()
	if len(models) == 0 {
		slog.Error("no models registered")
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
		WithUnitTest:  *withTests,
	})

	g.ApplyBasic(models...)
	g.Execute()

	slog.Info("query code generated", slog.String("out", *outPath), slog.Int("models", len(models)))
}
