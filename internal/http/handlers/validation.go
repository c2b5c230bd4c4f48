package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateRegister(req RegisterRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if !strings.Contains(req.Email, "@") {
		errs = append(errs, ValidationError{Field: "Email", Description: "A valid email is required"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, ValidationError{Field: "Password", Description: "Password must be at least 6 characters"})
	}
	return errs
}

func validateAddress(name, street, city, zipCode string) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(street) == "" {
		errs = append(errs, ValidationError{Field: "Street", Description: "Street is required"})
	}
	if strings.TrimSpace(city) == "" {
		errs = append(errs, ValidationError{Field: "City", Description: "City is required"})
	}
	if strings.TrimSpace(zipCode) == "" {
		errs = append(errs, ValidationError{Field: "ZipCode", Description: "Zip code is required"})
	}
	return errs
}
