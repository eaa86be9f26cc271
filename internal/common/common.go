package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// Path parameter holding a record id on every entity route.
	ParamID = "id"
	// Path parameter partitioning most listings by sport complex.
	ParamComplexID = "complexId"
)

// ParseUintParam reads a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.New("invalid " + name + " format")
	}
	return uint(v), nil
}

// ParseUintQuery reads a positive integer query parameter.
func ParseUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " format")
	}
	return uint(v), nil
}

// ParseBoolQuery reads a required boolean query parameter.
func ParseBoolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, errors.New(name + " is required")
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("invalid " + name + " format")
	}
	return v, nil
}

// StatusFor maps a service error onto the response class the transport returns.
func StatusFor(err error) int {
	switch {
	case IsResourceExists(err):
		return http.StatusConflict
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
