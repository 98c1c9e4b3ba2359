package handler

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var checkIDPattern = regexp.MustCompile(`^[0-9A-Z]{6}$`)

// checkID validates a check identifier as published by the checks engine
// catalog, a six character uppercase alphanumeric code.
func checkID(fl validator.FieldLevel) bool {
	return checkIDPattern.MatchString(fl.Field().String())
}

// RegisterValidation registers custom binding validations with the Gin
// validation engine. It has to run once before the engine serves requests.
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("checkid", checkID)
	}
	return fmt.Errorf("error getting validation engine")
}
