package models

type Recipe struct {
	ID          uint         `gorm:"primaryKey"`
	AuthorID    uint         `gorm:"not null;uniqueIndex:idx_recipe_author_name"`
	Author      User         `gorm:"foreignKey:AuthorID"`
	RecipeName  string       `gorm:"size:191;not null;uniqueIndex:idx_recipe_author_name"`
	Ingredients []Ingredient `gorm:"many2many:ingredients_recipes;"`
	Keywords    []Keyword    `gorm:"many2many:keywords_recipes;"`
	Comments    []Comment    `gorm:"foreignKey:RecipeID"`
}

// Ingredient and Keyword names are natural keys: a name maps to exactly one row.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:ingredient;uniqueIndex;size:191;not null"`
}

type Keyword struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:keyword;uniqueIndex;size:191;not null"`
}
