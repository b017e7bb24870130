package handler

import "github.com/cargotrack/cargo-api/internal/core/domain"

type productRequest struct {
	Name            string `json:"name"`
	ProductType     string `json:"productType"`
	Validity        string `json:"validity"`
	PhoneNumber     string `json:"phoneNumber"`
	ProductMaterial string `json:"productMaterial"`
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}
