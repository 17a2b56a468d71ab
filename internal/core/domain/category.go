package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryExists = errors.New("category name already exists")

// Category groups cars. CarIDs is the reverse side of Car.CategoryIDs; both
// sides are kept in sync inside a single transactional update whenever
// membership changes.
type Category struct {
	ID     string   `json:"id" bson:"_id,omitempty"`
	Name   string   `json:"name" bson:"name"`
	CarIDs []string `json:"car_ids" bson:"car_ids"`
}
