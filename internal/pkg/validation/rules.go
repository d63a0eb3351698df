package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates v against its `validate` struct tags. The returned error
// lists every failing field as "Field: tag[=param]" joined by "; ".
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), rule))
	}
	return errors.New(strings.Join(messages, "; "))
}
