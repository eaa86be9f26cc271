package validator

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
)

// ParseError flattens binding failures into field -> message.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // Non-validator errors
		fields["error"] = err.Error()
	}
	return fields
}

// BindJSON binds the request body into req and answers 400 when it does not validate.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		responses.SendValidationError(c, ParseError(err))
		return false
	}
	return true
}
