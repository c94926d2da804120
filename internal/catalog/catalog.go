// Package catalog is the read-only skin-condition reference directory.
// Scan records store only condition identifiers and display names; screens
// look descriptions up here when rendering results.
package catalog

// Condition describes one entry of the reference directory.
type Condition struct {
	ID          string
	Name        string
	Description string
}

var conditions = []Condition{
	{
		ID:          "acne",
		Name:        "Acne",
		Description: "Clogged hair follicles causing pimples, blackheads and whiteheads, most often on the face, chest and back.",
	},
	{
		ID:          "eczema",
		Name:        "Eczema",
		Description: "Chronic inflammatory condition with dry, itchy, red patches that flare periodically.",
	},
	{
		ID:          "psoriasis",
		Name:        "Psoriasis",
		Description: "Autoimmune condition producing thick, scaly plaques, typically on elbows, knees and scalp.",
	},
	{
		ID:          "rosacea",
		Name:        "Rosacea",
		Description: "Persistent facial redness with visible blood vessels, sometimes with small red bumps.",
	},
	{
		ID:          "contact-dermatitis",
		Name:        "Contact Dermatitis",
		Description: "Localized rash triggered by direct contact with an irritant or allergen.",
	},
	{
		ID:          "urticaria",
		Name:        "Urticaria",
		Description: "Raised, itchy wheals (hives) that appear and fade over hours, often allergic in origin.",
	},
	{
		ID:          "tinea",
		Name:        "Tinea",
		Description: "Fungal infection forming ring-shaped, scaly patches with a clearer center.",
	},
	{
		ID:          "vitiligo",
		Name:        "Vitiligo",
		Description: "Loss of pigment cells producing well-defined white patches of skin.",
	},
	{
		ID:          "seborrheic-dermatitis",
		Name:        "Seborrheic Dermatitis",
		Description: "Flaky, greasy scales and redness, usually on the scalp and other oily areas.",
	},
	{
		ID:          "melanoma",
		Name:        "Melanoma",
		Description: "Serious skin cancer often appearing as a new or changing mole with irregular borders or color.",
	},
}

// All returns a copy of the full condition list.
func All() []Condition {
	return append([]Condition(nil), conditions...)
}

// Get looks a condition up by identifier.
func Get(id string) (Condition, bool) {
	for _, c := range conditions {
		if c.ID == id {
			return c, true
		}
	}
	return Condition{}, false
}
