package validators

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AllowedExtensions mirrors the upstream allowed-extension list verbatim,
// including the undotted "jpeg" entry. Flagged for product-owner
// clarification; do not normalize without confirming intent.
var AllowedExtensions = []string{".jpg", ".png", "jpeg"}

const AllowedImageSize = 40000

// Errors maps a field name to the reason it was rejected. A nil map means
// the payload passed.
type Errors map[string]string

// Product checks the product constraints. The name rule (< 10 chars) is the
// literal upstream behavior and looks inverted; it is kept as-is pending
// clarification.
func Product(name, description string, price int) Errors {
	errs := Errors{}
	if price <= 0 {
		errs["price"] = "Price should be positive number"
	}
	if len(description) <= 10 {
		errs["description"] = "Description should contain at least 10 characters"
	}
	if len(name) >= 10 {
		errs["name"] = "Name should contain at most 10 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Order(count int) Errors {
	if count <= 0 {
		return Errors{"count": "You have to enter positive number for count"}
	}
	return nil
}

// Image checks an uploaded file against the size cap and the allowed
// extension set. Files without an extension pass the extension check.
func Image(filename string, size int64) Errors {
	errs := Errors{}
	if size > AllowedImageSize {
		errs["image"] = fmt.Sprintf("Maximum allowed image size is : %d", AllowedImageSize)
	}
	if ext := filepath.Ext(filename); ext != "" {
		allowed := false
		for _, a := range AllowedExtensions {
			if strings.ToLower(ext) == a {
				allowed = true
				break
			}
		}
		if !allowed {
			errs["image"] = fmt.Sprintf("Please, choose another file with allowed extension: %v", AllowedExtensions)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Signup checks the required signup fields.
func Signup(email, username, password, firstName, lastName string) Errors {
	errs := Errors{}
	for field, value := range map[string]string{
		"email":      email,
		"username":   username,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
	} {
		if value == "" {
			errs[field] = "This field is required"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
