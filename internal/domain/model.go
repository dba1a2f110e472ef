package domain

import "reflect"

// Model is implemented by exactly the five PIM resource variants below.
// The unexported marker keeps the set closed to this package.
type Model interface {
	ResourceType() ResourceType
	isModel()
}

// ResourceTypeOf returns the resource type of the model type T. When T is an
// interface type such as Model itself, the result is T's name, which is not a
// known resource type.
func ResourceTypeOf[T Model]() ResourceType {
	var m T
	if any(m) == nil {
		return ResourceType(reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return m.ResourceType()
}

type Product struct {
	Identifier string             `json:"identifier"`
	Family     string             `json:"family,omitempty"`
	Parent     string             `json:"parent,omitempty"`
	Categories []string           `json:"categories,omitempty"`
	Groups     []string           `json:"groups,omitempty"`
	Enabled    bool               `json:"enabled"`
	Values     map[string][]Value `json:"values,omitempty"`
	Links      map[string]Link    `json:"_links,omitempty"`
}

// Value is a single localizable/scopable product value.
type Value struct {
	Locale string `json:"locale,omitempty"`
	Scope  string `json:"scope,omitempty"`
	Data   any    `json:"data"`
}

type Link struct {
	Href string `json:"href"`
}

type Attribute struct {
	Code                string            `json:"code"`
	Type                string            `json:"type"`
	Group               string            `json:"group,omitempty"`
	Unique              bool              `json:"unique"`
	UseableAsGridFilter bool              `json:"useable_as_grid_filter"`
	Localizable         bool              `json:"localizable"`
	Scopable            bool              `json:"scopable"`
	SortOrder           int               `json:"sort_order"`
	Labels              map[string]string `json:"labels,omitempty"`
}

type AttributeOption struct {
	Attribute string            `json:"attribute"`
	Code      string            `json:"code"`
	SortOrder int               `json:"sort_order"`
	Labels    map[string]string `json:"labels,omitempty"`
}

type Family struct {
	Code                  string              `json:"code"`
	AttributeAsLabel      string              `json:"attribute_as_label,omitempty"`
	AttributeAsImage      string              `json:"attribute_as_image,omitempty"`
	Attributes            []string            `json:"attributes,omitempty"`
	AttributeRequirements map[string][]string `json:"attribute_requirements,omitempty"` // channel -> attribute codes
	Labels                map[string]string   `json:"labels,omitempty"`
}

type Category struct {
	Code   string            `json:"code"`
	Parent string            `json:"parent,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

func (*Product) ResourceType() ResourceType         { return ResourceTypeProduct }
func (*Attribute) ResourceType() ResourceType       { return ResourceTypeAttribute }
func (*AttributeOption) ResourceType() ResourceType { return ResourceTypeAttributeOption }
func (*Family) ResourceType() ResourceType          { return ResourceTypeFamily }
func (*Category) ResourceType() ResourceType        { return ResourceTypeCategory }

func (*Product) isModel()         {}
func (*Attribute) isModel()       {}
func (*AttributeOption) isModel() {}
func (*Family) isModel()          {}
func (*Category) isModel()        {}
