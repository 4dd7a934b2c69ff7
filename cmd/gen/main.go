// Command gen writes the typed GORM query helpers for the postgres models.
package main

import (
	"gorm.io/gen"

	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProductModel{},
		model.CategoryModel{},
		model.SlideModel{},
		model.OrderModel{},
		model.ForumTopicModel{},
		model.ForumCommentModel{},
		model.AnalyticsEventModel{},
		model.VisitModel{},
		model.ActivityLogModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
