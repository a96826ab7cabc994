package model

type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Completed bool   `json:"completed"`
}
