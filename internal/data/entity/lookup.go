package entity

import "github.com/google/uuid"

type MealPlan struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Available   bool      `db:"available"`
}

type Activity struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Available   bool      `db:"available"`
}
