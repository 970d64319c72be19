package main

import (
	"github.com/BeMaTech82/hortago/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CredentialModel{},
		model.RefreshTokenModel{},
		model.ProductModel{},
		model.SavedSearchModel{},
		model.ProximityMatchModel{},
		model.UserDeviceModel{},
		model.QueuedTaskModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
