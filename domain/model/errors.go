package model

import "errors"

var (
	ErrDeploymentInvalid   = errors.New("deployment invalid")
	ErrDeploymentProtected = errors.New("deployment protected")
	ErrStackInvalid        = errors.New("stack invalid")
	ErrStackNotFound       = errors.New("stack not found")
	ErrConfirmationNeeded  = errors.New("confirmation required")
	ErrRunNotFound         = errors.New("run not found")
	ErrRunInvalid          = errors.New("run invalid")
)
