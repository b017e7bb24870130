package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id")
var ErrMissingFields = errors.New("all fields are required")

// Product is a tracked cargo record. The identifier is assigned by the store
// at creation and exposed verbatim; Validity stays a plain date string because
// that is what the collection holds and what QR payloads embed.
type Product struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ProductType     string `json:"productType"`
	Validity        string `json:"validity"`
	PhoneNumber     string `json:"phoneNumber"`
	ProductMaterial string `json:"productMaterial"`
}

// IsValidProductID reports whether s has the shape of a store identifier
// (24 hexadecimal characters). It says nothing about existence.
func IsValidProductID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
