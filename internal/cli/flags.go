package cli

import (
	"fmt"
	"strings"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/spf13/pflag"
)

// categoryValue is a pflag.Value for quest categories, validating against
// the known set.
type categoryValue domain.QuestCategory

var _ pflag.Value = (*categoryValue)(nil)

var knownCategories = []domain.QuestCategory{
	domain.CategoryFocus,
	domain.CategoryHydration,
	domain.CategoryHPCore,
	domain.CategoryChores,
	domain.CategoryMeta,
}

func (c *categoryValue) String() string {
	return string(*c)
}

func (c *categoryValue) Set(s string) error {
	for _, cat := range knownCategories {
		if s == string(cat) {
			*c = categoryValue(cat)
			return nil
		}
	}
	names := make([]string, len(knownCategories))
	for i, cat := range knownCategories {
		names[i] = string(cat)
	}
	return fmt.Errorf("unknown category %q (one of %s)", s, strings.Join(names, ", "))
}

func (c *categoryValue) Type() string {
	return "category"
}
