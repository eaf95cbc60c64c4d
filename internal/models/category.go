package models

const CategoryLabelColumn = "category"

type Category struct {
	BaseModel
	Category string `gorm:"column:category;type:varchar(255);not null;unique" json:"category" validate:"required,notblank"`
}

func (Category) TableName() string {
	return "category"
}

func (c *Category) Label() string {
	return c.Category
}
