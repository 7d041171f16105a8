package catalog

import (
	"fmt"

	"github.com/ytget/ytpick/internal/model"
)

// Resolve maps a label chosen by the user back to its descriptor. Only exact
// matches are accepted.
func (c *Catalog) Resolve(label string) (model.EncodingDescriptor, error) {
	if c == nil {
		return model.EncodingDescriptor{}, fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	i, ok := c.index[label]
	if !ok {
		return model.EncodingDescriptor{}, fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	return c.entries[i].Descriptor, nil
}

// Entry returns the full catalog entry for a label
func (c *Catalog) Entry(label string) (model.CatalogEntry, error) {
	d, err := c.Resolve(label)
	if err != nil {
		return model.CatalogEntry{}, err
	}
	return model.CatalogEntry{Label: label, Descriptor: d}, nil
}
