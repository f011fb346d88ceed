package mysql

import (
	"Hive_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	DB *gorm.DB
}

// FindByNames 按名字批量查分类。缺失的名字由调用方对比得出
func (r *CategoryRepository) FindByNames(names []string) ([]model.Category, error) {
	var list []model.Category
	err := r.DB.Where("name IN ?", names).Find(&list).Error
	return list, err
}

func (r *CategoryRepository) Ensure(name string) (*model.Category, error) {
	cat := &model.Category{Name: name}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(cat).Error
	if err != nil {
		return nil, err
	}
	if cat.ID == 0 {
		// 已存在，查回来
		err = r.DB.Where("name = ?", name).First(cat).Error
	}
	return cat, err
}
