package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownResourceType = errors.New("unknown resource type")

type ResourceType string

func (r ResourceType) String() string {
	return string(r)
}

const (
	ResourceTypeProduct         ResourceType = "product"
	ResourceTypeAttribute       ResourceType = "attribute"
	ResourceTypeAttributeOption ResourceType = "attribute_option"
	ResourceTypeFamily          ResourceType = "family"
	ResourceTypeCategory        ResourceType = "category"
)

var ResourceTypes = []ResourceType{
	ResourceTypeProduct,
	ResourceTypeAttribute,
	ResourceTypeAttributeOption,
	ResourceTypeFamily,
	ResourceTypeCategory,
}

// IsKnown reports whether r is one of the five PIM resource types.
func (r ResourceType) IsKnown() bool {
	switch r {
	case ResourceTypeProduct,
		ResourceTypeAttribute,
		ResourceTypeAttributeOption,
		ResourceTypeFamily,
		ResourceTypeCategory:
		return true
	default:
		return false
	}
}

func (r ResourceType) GetResourceName() string {
	switch r {
	case ResourceTypeProduct:
		return "Products"
	case ResourceTypeAttribute:
		return "Attributes"
	case ResourceTypeAttributeOption:
		return "Attribute options"
	case ResourceTypeFamily:
		return "Families"
	case ResourceTypeCategory:
		return "Categories"
	default:
		return "Unknown"
	}
}

// ParseResourceType maps user input such as "Product" or "attribute-option"
// to a resource type.
func ParseResourceType(s string) (ResourceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	r := ResourceType(normalized)
	if !r.IsKnown() {
		return "", fmt.Errorf("%w: %q", ErrUnknownResourceType, s)
	}
	return r, nil
}
