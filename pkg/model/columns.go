// pkg/model/columns.go
package model

// Column names of the King County housing dataset that the preparation rules
// are keyed to. Presence of each column is checked before use; tables missing
// any of them still flow through the pipeline.
const (
	ColBedrooms     = "bedrooms"
	ColPrice        = "price"
	ColSqftLiving   = "sqft_living"
	ColSqftAbove    = "sqft_above"
	ColSqftBasement = "sqft_basement"
	ColYrBuilt      = "yr_built"
	ColYrSold       = "yr_sold"
	ColYrRenovated  = "yr_renovated"
)

// Derived columns produced by feature augmentation
const (
	ColHouseAge     = "house_age"
	ColWasRenovated = "was_renovated"
)

// Placeholder is the literal the raw dataset uses to denote an unknown
// measurement. It is normalized to the missing-value marker before any type
// coercion.
const Placeholder = "?"

// BedroomsOutlier is a known data-entry error in the dataset: a single listing
// recorded with 33 bedrooms. Rows carrying it are dropped outright rather than
// range-filtered.
const BedroomsOutlier = 33
