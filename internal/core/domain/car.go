package domain

import "errors"

var ErrCarNotFound = errors.New("car not found")
var ErrCarExists = errors.New("car already exists")

// Car is a rentable vehicle. Available is an advisory flag set by admins; real
// bookability is always recomputed from reservation overlap, never from it.
type Car struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Plate       string   `json:"plate" bson:"plate"`
	Brand       string   `json:"brand" bson:"brand"`
	Description string   `json:"description" bson:"description"`
	PricePerDay float64  `json:"price_per_day" bson:"price_per_day"`
	ImageURL    string   `json:"image_url" bson:"image_url"`
	Available   bool     `json:"available" bson:"available"`
	CategoryIDs []string `json:"category_ids" bson:"category_ids"`
}
