package controllers

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared across controllers; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()
