package rules

// table is the built-in rule set. It is never mutated; Lookup hands out copies.
var table = map[string]Rule{
	"living": {
		Anchor:      true,
		AspectRatio: 1.5,
		Prefer:      map[string]int{"kitchen": 4, "dining": 5, "bedroom": 3, "balcony": 4},
		Forbid:      []string{"storage", "utility", "bathroom"},
	},
	"bedroom": {
		AspectRatio: 1.2,
		Prefer:      map[string]int{"living": 5, "bathroom": 5},
		Forbid:      []string{"kitchen", "dining", "bedroom", "storage", "utility"},
	},
	"kitchen": {
		AspectRatio: 1.0,
		Prefer:      map[string]int{"living": 5, "dining": 5, "storage": 3, "utility": 2},
		Forbid:      []string{"bedroom", "bathroom"},
	},
	"bathroom": {
		AspectRatio: 1.0,
		Prefer:      map[string]int{"bedroom": 5, "study": 4, "living": 3},
		Forbid:      []string{"kitchen", "dining", "bathroom", "storage"},
	},
	"dining": {
		AspectRatio: 1.3,
		Prefer:      map[string]int{"living": 5, "kitchen": 5},
		Forbid:      []string{"bedroom", "bathroom", "storage"},
	},
	"storage": {
		AspectRatio: 1.0,
		Prefer:      map[string]int{"kitchen": 4, "utility": 3},
		Forbid:      []string{"living", "bedroom", "dining"},
	},
	"utility": {
		AspectRatio: 1.0,
		Prefer:      map[string]int{"kitchen": 4, "storage": 3},
		Forbid:      []string{"living", "bedroom", "dining", "bathroom"},
	},
	"balcony": {
		External:    true,
		AspectRatio: 2.0,
		Prefer:      map[string]int{"living": 4, "bedroom": 4},
		Forbid:      []string{"kitchen", "bathroom", "storage"},
	},
	"garden": {
		External:    true,
		AspectRatio: 1.8,
		Prefer:      map[string]int{"living": 4, "dining": 3},
		Forbid:      []string{"bedroom", "bathroom", "kitchen"},
	},
	"study": {
		AspectRatio: 1.2,
		Prefer:      map[string]int{"living": 3, "bedroom": 2, "bathroom": 4},
		Forbid:      []string{"kitchen"},
	},
	"pooja": {
		AspectRatio: 1.0,
		Prefer:      map[string]int{"living": 4},
		Forbid:      []string{"kitchen", "bathroom", "bedroom"},
	},
}

// defaultRule applies to every type missing from table.
var defaultRule = Rule{
	AspectRatio: 1.0,
	Prefer:      map[string]int{"living": 2},
}
