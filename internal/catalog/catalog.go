package catalog

import (
	"strings"

	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// Item is a single candidate food item in a generated catalog. Tags carry the
// food class (protein, veg, lunch-carb/carb, healthy-fat) plus descriptive
// markers used by the plan assembler.
type Item struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// poolTarget is the number of items generated per food class.
const poolTarget = 100

var proteinBases = []string{
	"eggs", "egg whites", "chicken breast", "chicken thigh", "turkey", "lean beef",
	"lean goat meat", "tilapia", "mackerel", "catfish", "sardine (water)", "salmon",
	"shrimp", "prawns", "tuna (water)", "tofu", "snail", "gizzard", "kidney (moderate)",
}

var proteinMethods = []string{"grilled", "roasted", "baked", "boiled", "stewed", "smoked", "pan-seared"}

var vegBases = []string{
	"spinach (efo)", "ugu (pumpkin leaves)", "soko (celosia)", "bitterleaf",
	"okra", "cabbage", "lettuce", "kale", "cucumber", "tomatoes", "carrots",
	"bell pepper", "green beans", "broccoli", "cauliflower", "garden egg",
	"amaranth greens",
}

var vegMethods = []string{"steamed", "sautéed", "stir-fried", "raw salad"}

var carbBases = []string{
	"brown rice", "ofada rice", "white rice", "yam", "sweet potato", "Irish potato",
	"plantain", "garri (eba)", "amala", "semovita (semo)", "fufu", "tuwo",
	"beans (boiled)", "spaghetti", "macaroni", "couscous", "millet", "oats",
	"wheat semolina", "pounded yam",
}

var carbPortions = []string{"small portion of", "moderate portion of"}

var fatBases = []string{
	"avocado (half)", "avocado (quarter)", "olive oil (1 tbsp)", "olive oil (2 tsp)",
	"groundnuts (handful)", "cashews (handful)", "almonds (handful)", "walnuts (handful)",
	"peanut butter, no sugar (1 tbsp)", "groundnut oil (1 tsp)", "palm oil (controlled, 1 tsp)",
	"coconut oil (1 tsp)", "flaxseed (1 tbsp)", "chia seeds (1 tbsp)", "sesame seeds (1 tbsp)",
}

// Generate builds the full catalog of singular Nigerian food items grouped by
// class. Category and answers do not alter the content today; the catalog is
// deterministic so selections stay valid across calls. Ids are assigned
// sequentially from 1 across the concatenated pools.
func Generate(category string, answers survey.AnswerSet) []Item {
	items := make([]Item, 0, 4*poolTarget)
	items = append(items, buildVariations(proteinBases, proteinMethods, []string{"protein"})...)
	items = append(items, buildVariations(vegBases, vegMethods, []string{"veg", "vegetables"})...)
	items = append(items, buildCarbItems(carbBases)...)
	items = append(items, buildFatItems(fatBases)...)

	for i := range items {
		items[i].ID = i + 1
	}
	return items
}

// buildVariations cycles base names against preparation methods, wrapping
// with modulo indexes until the target pool size is reached.
func buildVariations(bases, methods []string, extraTags []string) []Item {
	if len(bases) == 0 {
		return nil
	}
	zeroCarb := false
	for _, t := range extraTags {
		if t == "protein" || t == "veg" || t == "healthy-fat" {
			zeroCarb = true
		}
	}

	out := make([]Item, 0, poolTarget)
	for i := 0; len(out) < poolTarget; i++ {
		base := bases[i%len(bases)]
		name := title(base)
		if len(methods) > 0 {
			name = title(methods[i%len(methods)]) + " " + base
		}
		tags := append([]string{"nigerian"}, extraTags...)
		if zeroCarb {
			tags = append(tags, "zero-carb-suitable")
		}
		out = append(out, Item{Name: name, Tags: tags})
	}
	return out
}

// buildCarbItems presents carbohydrates as portioned items without cooking
// methods.
func buildCarbItems(bases []string) []Item {
	if len(bases) == 0 {
		return nil
	}
	out := make([]Item, 0, poolTarget)
	for i := 0; len(out) < poolTarget; i++ {
		base := bases[i%len(bases)]
		portion := carbPortions[i%len(carbPortions)]
		out = append(out, Item{
			Name: title(portion) + " " + base,
			Tags: []string{"nigerian", "lunch-carb", "carb"},
		})
	}
	return out
}

func buildFatItems(bases []string) []Item {
	if len(bases) == 0 {
		return nil
	}
	out := make([]Item, 0, poolTarget)
	for i := 0; len(out) < poolTarget; i++ {
		out = append(out, Item{
			Name: title(bases[i%len(bases)]),
			Tags: []string{"nigerian", "healthy-fat", "zero-carb-suitable"},
		})
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// HasTag reports whether an item carries the given class tag
// (case-insensitive).
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
