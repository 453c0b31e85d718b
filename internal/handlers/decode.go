package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"carbooking/internal/models"
	"carbooking/internal/services"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("invalid request body")

// Form values arrive as strings; these keys are coerced before the form is
// decoded like a JSON body.
var (
	carIntFields   = fieldSet("passengers", "mediumLuggage", "smallLuggage", "seats", "bags")
	carFloatFields = fieldSet("price", "rating", "pricePerDay")
	carBoolFields  = fieldSet("isActive")

	bookingIntFields   = fieldSet("passengers", "luggage")
	bookingFloatFields = fieldSet("totalPrice")
)

// bookingKeys are the JSON names BookingInput understands. Anything else in
// a booking payload is kept as an extra.
var bookingKeys = jsonFieldNames(reflect.TypeOf(models.BookingInput{}))

func fieldSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func jsonFieldNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}

func isForm(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == gin.MIMEMultipartPOSTForm || ct == gin.MIMEPOSTForm
}

// decodeCarInput reads a car create or update body. Multipart requests may
// carry the picture in the "image" file field.
func decodeCarInput(c *gin.Context) (*models.CarInput, *services.ImageUpload, error) {
	var input models.CarInput

	if !isForm(c) {
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		return &input, nil, nil
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	raw := make(map[string]interface{})
	for key, values := range c.Request.PostForm {
		if len(values) == 0 {
			continue
		}
		if key == "features" {
			raw[key] = parseFeatures(values)
			continue
		}
		value, skip, err := coerceFormValue(key, values[0], carIntFields, carFloatFields, carBoolFields)
		if err != nil {
			return nil, nil, err
		}
		if !skip {
			raw[key] = value
		}
	}
	if err := remarshal(raw, &input); err != nil {
		return nil, nil, err
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return &input, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return &input, imageUpload(file, header), nil
}

func imageUpload(file multipart.File, header *multipart.FileHeader) *services.ImageUpload {
	return &services.ImageUpload{Filename: header.Filename, Reader: file}
}

func closeImage(image *services.ImageUpload) {
	if image == nil {
		return
	}
	if closer, ok := image.Reader.(io.Closer); ok {
		_ = closer.Close()
	}
}

// parseFeatures accepts repeated fields, a comma separated list or a JSON
// array.
func parseFeatures(values []string) []string {
	if len(values) == 1 {
		v := strings.TrimSpace(values[0])
		if strings.HasPrefix(v, "[") {
			var list []string
			if err := json.Unmarshal([]byte(v), &list); err == nil {
				return list
			}
		}
		values = strings.Split(v, ",")
	}

	features := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			features = append(features, v)
		}
	}
	return features
}

func coerceFormValue(key, value string, ints, floats, bools map[string]bool) (interface{}, bool, error) {
	value = strings.TrimSpace(value)
	switch {
	case ints[key]:
		if value == "" {
			return nil, true, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s must be a whole number", errInvalidBody, key)
		}
		return n, false, nil
	case floats[key]:
		if value == "" {
			return nil, true, nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s must be a number", errInvalidBody, key)
		}
		return f, false, nil
	case bools[key]:
		if value == "" {
			return nil, true, nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s must be true or false", errInvalidBody, key)
		}
		return b, false, nil
	default:
		return value, false, nil
	}
}

// decodeBookingInput reads a booking from a JSON object or a form.
func decodeBookingInput(c *gin.Context) (*models.BookingInput, error) {
	raw := make(map[string]interface{})

	if isForm(c) {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}
	} else if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	return bookingInputFromMap(raw)
}

// bookingInputFromMap splits a free-form payload into the known booking
// fields and the extras.
func bookingInputFromMap(raw map[string]interface{}) (*models.BookingInput, error) {
	known := make(map[string]interface{}, len(raw))
	extras := make(map[string]interface{})

	for key, value := range raw {
		if !bookingKeys[key] {
			extras[key] = value
			continue
		}
		switch v := value.(type) {
		case string:
			coerced, skip, err := coerceFormValue(key, v, bookingIntFields, bookingFloatFields, nil)
			if err != nil {
				return nil, err
			}
			if skip {
				continue
			}
			value = coerced
		case float64:
			if !bookingIntFields[key] && !bookingFloatFields[key] {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		known[key] = value
	}

	var input models.BookingInput
	if err := remarshal(known, &input); err != nil {
		return nil, err
	}
	if len(extras) > 0 {
		input.Extras = extras
	}
	return &input, nil
}

func remarshal(src map[string]interface{}, dest interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}
