package main

import (
	"funnel/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.InquiryModel{},
		model.PartnerModel{},
		model.BlockedDateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
