package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorClassification(t *testing.T) {
	exists := ResourceExists("Pocket: %s already exist", "A")
	missing := NotFound("pocket", 7)
	fault := errors.New("connection reset")

	assert.True(t, IsResourceExists(exists))
	assert.False(t, IsNotFound(exists))
	assert.Equal(t, "Pocket: A already exist", exists.Error())

	assert.True(t, IsNotFound(missing))
	assert.Equal(t, "pocket 7 not found", missing.Error())

	assert.False(t, IsResourceExists(fault))
	assert.False(t, IsNotFound(fault))
}

func TestDomainErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("trainer", 1))
	assert.True(t, IsNotFound(wrapped))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(ResourceExists("x")))
	assert.Equal(t, http.StatusNotFound, StatusFor(NotFound("x", 1)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}

func TestNotFoundByKey(t *testing.T) {
	err := NotFoundBy("employee", "personId", "P-1")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "employee with personId P-1 not found", err.Error())
}
