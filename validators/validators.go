// Package validators holds the shared rule engine and request types used by
// the per-area validator middlewares.
package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "params"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Struct runs the struct-tag rules and returns one message per failed field.
func Struct(s interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["request"] = "Invalid request!"
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required!"
	case "email":
		return "Invalid email!"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
	}
	return "Invalid " + fe.Field() + "!"
}

// FlexInt accepts a JSON number or a numeric string. Clients send ids as
// strings because the API returns them that way.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = FlexInt{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		var fl float64
		if json.Unmarshal([]byte(s), &fl) != nil || fl != float64(int(fl)) {
			return fmt.Errorf("invalid integer %q", s)
		}
		v = int(fl)
	}
	*f = FlexInt{Value: v, Set: true}
	return nil
}

// ID returns the value as a positive identifier.
func (f FlexInt) ID() (uint, bool) {
	if !f.Set || f.Value <= 0 {
		return 0, false
	}
	return uint(f.Value), true
}

// RequireID records a field error unless f holds a positive id.
func RequireID(errs map[string]string, field string, f FlexInt) uint {
	id, ok := f.ID()
	if !ok {
		errs[field] = field + " must be a positive number!"
	}
	return id
}

// UserCourse is the (userId, courseId) pair many routes are keyed by.
type UserCourse struct {
	UserID   uint
	CourseID uint
}

// UserCourseParams validates :userId and :courseId path parameters.
func UserCourseParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errs := make(map[string]string)
		userID, ok := utils.ParseID(c.Params("userId"))
		if !ok {
			errs["userId"] = "Invalid User ID!"
		}
		courseID, ok := utils.ParseID(c.Params("courseId"))
		if !ok {
			errs["courseId"] = "Invalid Course ID!"
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedUserCourse", &UserCourse{UserID: userID, CourseID: courseID})
		return c.Next()
	}
}

// IDParam validates a numeric path parameter and stores it under "validatedID".
func IDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := utils.ParseID(c.Params(name))
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{name: "Invalid " + name + "!"})
		}
		c.Locals("validatedID", id)
		return c.Next()
	}
}
