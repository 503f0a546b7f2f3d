package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"legali_app_go/models"
	"legali_app_go/services/wizard"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Regions is the set of selectable profile regions, keyed by slug
var Regions = []struct {
	Value string `json:"value"`
	Label string `json:"label"`
}{
	{"united-states", "United States"},
	{"canada", "Canada"},
	{"united-kingdom", "United Kingdom"},
	{"germany", "Germany"},
	{"france", "France"},
	{"australia", "Australia"},
	{"japan", "Japan"},
	{"singapore", "Singapore"},
	{"indonesia", "Indonesia"},
	{"malaysia", "Malaysia"},
	{"philippines", "Philippines"},
	{"vietnam", "Vietnam"},
	{"thailand", "Thailand"},
	{"india", "India"},
	{"china", "China"},
	{"south-korea", "South Korea"},
	{"brazil", "Brazil"},
	{"mexico", "Mexico"},
	{"argentina", "Argentina"},
	{"south-africa", "South Africa"},
}

// IsValidRegion reports whether value is a known region slug
func IsValidRegion(value string) bool {
	for _, r := range Regions {
		if r.Value == value {
			return true
		}
	}
	return false
}

// NormalizeProfileUpdate strips markup and surrounding space from the editable fields
func NormalizeProfileUpdate(update models.ProfileUpdate) models.ProfileUpdate {
	update.FirstName = SanitizeText(update.FirstName)
	update.LastName = SanitizeText(update.LastName)
	update.Region = strings.TrimSpace(update.Region)
	return update
}

// ValidateProfileUpdate returns wizard.ValidationErrors keyed by JSON field, or nil
func ValidateProfileUpdate(update models.ProfileUpdate) error {
	errs := wizard.ValidationErrors{}

	if msg := validateName("First name", update.FirstName); msg != "" {
		errs["first_name"] = msg
	}
	if msg := validateName("Last name", update.LastName); msg != "" {
		errs["last_name"] = msg
	}
	if update.Region != "" && !IsValidRegion(update.Region) {
		errs["region"] = "Please select a region"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateName(label, value string) string {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return label + " is required"
	case n < 2:
		return label + " must be at least 2 characters"
	case n > 50:
		return label + " must be less than 50 characters"
	case !nameRegex.MatchString(value):
		return label + " can only contain letters and spaces"
	}
	return ""
}
