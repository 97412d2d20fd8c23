package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"healthdesk/internal/features"
	"healthdesk/internal/models"
)

// AllowedEmailDomains lists the domains accepted for ExtendedUserInput.Email.
var AllowedEmailDomains = []string{"hdfc.com", "icici.com", "sbi.com", "axisbank.com", "canarabank.com"}

// SeniorIncomeThreshold is compared directly against income_lpa for callers
// older than 60. The value is kept as written even though income_lpa is in
// lakhs, which makes the rule reject almost every senior.
const SeniorIncomeThreshold = 1000000

const (
	maxNameLength    = 50
	maxAllergies     = 5
	defaultAddrCity  = "Aya Nagar"
	defaultAddrState = "New Delhi"
	defaultAddrPin   = 110047
)

var userInputFields = []string{"age", "weight", "height", "income_lpa", "smoker", "city", "occupation"}

var extendedFields = []string{"name", "married", "allergies", "contact_details", "email", "linkedin_url", "address"}

var validate = validator.New()

// ParseUserInput validates a prediction request body.
func ParseUserInput(raw RawInput) (models.UserInput, error) {
	c := &collector{}
	in := parseUserInput(c, raw, validateAge, false)
	c.rejectUnknown(raw, userInputFields)
	if err := c.err(); err != nil {
		return models.UserInput{}, err
	}
	return in, nil
}

// ParseExtendedUserInput validates a prediction request body carrying the
// optional profile fields, then applies the senior income rule.
func ParseExtendedUserInput(raw RawInput) (models.ExtendedUserInput, error) {
	c := &collector{}
	out := models.ExtendedUserInput{
		UserInput: parseUserInput(c, raw, validateExtendedAge, true),
	}

	out.Name = optional(c, raw, "name", validateName)
	out.Married = optional(c, raw, "married", toBool)
	if allergies := optional(c, raw, "allergies", validateAllergies); allergies != nil {
		out.Allergies = *allergies
	}
	if contacts := optional(c, raw, "contact_details", validateContactDetails); contacts != nil {
		out.ContactDetails = *contacts
	}
	out.Email = optional(c, raw, "email", validateEmail)
	out.LinkedInURL = optional(c, raw, "linkedin_url", validateURL)
	out.Address = optional(c, raw, "address", validateAddress)
	c.rejectUnknown(raw, append(append([]string{}, userInputFields...), extendedFields...))

	if c.ok() && out.Age > 60 && out.IncomeLPA < SeniorIncomeThreshold {
		c.add("income_lpa", "Client above 60 years must have income more than 10 lpa")
	}
	if err := c.err(); err != nil {
		return models.ExtendedUserInput{}, err
	}
	return out, nil
}

func parseUserInput(c *collector, raw RawInput, ageCheck func(any) (int, error), strictWeight bool) models.UserInput {
	var in models.UserInput
	in.Age, _ = required(c, raw, "age", ageCheck)
	in.Weight, _ = required(c, raw, "weight", func(v any) (float64, error) {
		return validateWeight(v, strictWeight)
	})
	in.Height, _ = required(c, raw, "height", validateHeight)
	in.IncomeLPA, _ = required(c, raw, "income_lpa", validateIncome)
	in.Smoker, _ = required(c, raw, "smoker", toBool)
	in.City, _ = required(c, raw, "city", validateCity)
	in.Occupation, _ = required(c, raw, "occupation", validateOccupation)
	return in
}

func validateAge(v any) (int, error) {
	age, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if age <= 0 {
		return 0, errors.New("must be greater than 0")
	}
	if age >= 120 {
		return 0, errors.New("must be less than 120")
	}
	return age, nil
}

func validateExtendedAge(v any) (int, error) {
	age, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if age <= 0 || age >= 100 {
		return 0, errors.New("Age must be between 1 and 99")
	}
	return age, nil
}

func validateWeight(v any, strict bool) (float64, error) {
	w, err := toFloat(v, strict)
	if err != nil {
		return 0, err
	}
	return w, greaterThanZero(w)
}

func validateHeight(v any) (float64, error) {
	h, err := toFloat(v, false)
	if err != nil {
		return 0, err
	}
	if err := greaterThanZero(h); err != nil {
		return 0, err
	}
	if h >= 2.5 {
		return 0, errors.New("must be less than 2.5")
	}
	return h, nil
}

func validateIncome(v any) (float64, error) {
	income, err := toFloat(v, false)
	if err != nil {
		return 0, err
	}
	return income, greaterThanZero(income)
}

func validateCity(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	city := features.NormalizeCity(s)
	if city == "" {
		return "", errEmpty
	}
	return city, nil
}

func validateOccupation(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	return s, oneOf(s, models.Occupations)
}

func validateName(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(s) > maxNameLength {
		return "", errors.New("must be at most 50 characters")
	}
	return s, nil
}

func validateAllergies(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New("must be a list of strings")
	}
	if len(items) > maxAllergies {
		return nil, errors.New("must have at most 5 items")
	}
	allergies := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("must be a list of strings")
		}
		allergies = append(allergies, s)
	}
	return allergies, nil
}

func validateContactDetails(v any) (map[string]string, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("must be an object of strings")
	}
	details := make(map[string]string, len(obj))
	for k, item := range obj {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("must be an object of strings")
		}
		details[k] = s
	}
	return details, nil
}

func validateEmail(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	email := strings.ToLower(strings.TrimSpace(s))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", errors.New("must be a valid email address")
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if err := oneOf(domain, AllowedEmailDomains); err != nil {
		return "", errors.New("Email domain must be one of: " + strings.Join(AllowedEmailDomains, ", "))
	}
	return email, nil
}

func validateURL(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	if err := validate.Var(s, "required,url"); err != nil {
		return "", errors.New("must be a valid URL")
	}
	return s, nil
}

func validateAddress(v any) (models.Address, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.Address{}, errors.New("must be an object")
	}
	addr := models.Address{City: defaultAddrCity, State: defaultAddrState, Pin: defaultAddrPin}
	if city, ok := obj["city"]; ok && city != nil {
		s, err := toString(city)
		if err != nil {
			return models.Address{}, errors.New("city " + err.Error())
		}
		addr.City = s
	}
	if state, ok := obj["state"]; ok && state != nil {
		s, err := toString(state)
		if err != nil {
			return models.Address{}, errors.New("state " + err.Error())
		}
		addr.State = s
	}
	if pin, ok := obj["pin"]; ok && pin != nil {
		n, err := toInt(pin)
		if err != nil {
			return models.Address{}, errors.New("pin " + err.Error())
		}
		addr.Pin = n
	}
	return addr, nil
}
