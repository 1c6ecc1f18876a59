package catalog

import (
	"sort"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
)

// ItemCatalog answers kind-class and stack-size questions for item kinds.
// Unknown kinds have no classes and the default stack size.
type ItemCatalog struct {
	classes      map[string][]domain.KindClass
	maxStack     map[string]int
	defaultStack int
}

// NewItemCatalog creates an item catalog. defaultStack applies to kinds
// without an explicit max stack; 0 means unlimited.
func NewItemCatalog(defaultStack int) *ItemCatalog {
	return &ItemCatalog{
		classes:      make(map[string][]domain.KindClass),
		maxStack:     make(map[string]int),
		defaultStack: defaultStack,
	}
}

// Add registers kind with its classes and max stack (0 = catalog default)
func (c *ItemCatalog) Add(kind string, classes []domain.KindClass, maxStack int) {
	c.classes[kind] = append([]domain.KindClass(nil), classes...)
	if maxStack > 0 {
		c.maxStack[kind] = maxStack
	}
}

// Has returns true if kind was registered
func (c *ItemCatalog) Has(kind string) bool {
	_, ok := c.classes[kind]
	return ok
}

// Classes implements quality.KindClassifier
func (c *ItemCatalog) Classes(kind string) []domain.KindClass {
	return c.classes[kind]
}

// MaxStack implements loot.StackLimiter
func (c *ItemCatalog) MaxStack(kind string) int {
	if n, ok := c.maxStack[kind]; ok {
		return n
	}
	return c.defaultStack
}

// Kinds returns the registered kinds, sorted
func (c *ItemCatalog) Kinds() []string {
	kinds := make([]string, 0, len(c.classes))
	for k := range c.classes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// AugmentationCatalog lists valid augmentations per kind class
type AugmentationCatalog struct {
	byClass map[domain.KindClass][]quality.Augmentation
}

// NewAugmentationCatalog creates an empty augmentation catalog
func NewAugmentationCatalog() *AugmentationCatalog {
	return &AugmentationCatalog{byClass: make(map[domain.KindClass][]quality.Augmentation)}
}

// Add appends augmentations for class
func (a *AugmentationCatalog) Add(class domain.KindClass, augs ...quality.Augmentation) {
	a.byClass[class] = append(a.byClass[class], augs...)
}

// For implements quality.AugmentationSource. The returned slice must not be modified.
func (a *AugmentationCatalog) For(class domain.KindClass) []quality.Augmentation {
	return a.byClass[class]
}
