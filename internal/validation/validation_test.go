package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthdesk/internal/models"
)

func validUserInput() RawInput {
	return RawInput{
		"age":        json.Number("30"),
		"weight":     json.Number("65"),
		"height":     json.Number("1.7"),
		"income_lpa": json.Number("10"),
		"smoker":     false,
		"city":       "  new delhi ",
		"occupation": "private_job",
	}
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields()
}

func TestDecodeRawInput(t *testing.T) {
	raw, err := DecodeRawInput([]byte(`{"age": 30, "height": 1.7}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("30"), raw["age"])

	_, err = DecodeRawInput([]byte(`{"age": `))
	assert.Equal(t, []string{"body"}, validationFields(t, err))

	_, err = DecodeRawInput([]byte(`null`))
	assert.Equal(t, []string{"body"}, validationFields(t, err))

	_, err = DecodeRawInput([]byte(`[1, 2]`))
	assert.Equal(t, []string{"body"}, validationFields(t, err))
}

func TestDecodeRawInputRejectsTrailingData(t *testing.T) {
	for _, body := range []string{`{"age": 30} junk`, `{"age": 30}{"age": 31}`, `{"age": 30} 1`} {
		_, err := DecodeRawInput([]byte(body))
		assert.Equal(t, []string{"body"}, validationFields(t, err), body)
	}

	raw, err := DecodeRawInput([]byte("{\"age\": 30}\n  "))
	require.NoError(t, err)
	assert.Equal(t, json.Number("30"), raw["age"])
}

func TestParseUserInput(t *testing.T) {
	in, err := ParseUserInput(validUserInput())
	require.NoError(t, err)

	assert.Equal(t, models.UserInput{
		Age:        30,
		Weight:     65,
		Height:     1.7,
		IncomeLPA:  10,
		Smoker:     false,
		City:       "New Delhi",
		Occupation: "private_job",
	}, in)
}

func TestParseUserInputCoercion(t *testing.T) {
	raw := validUserInput()
	raw["age"] = "42"
	raw["weight"] = 70.5
	raw["smoker"] = "true"
	raw["height"] = json.Number("1.80")

	in, err := ParseUserInput(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, in.Age)
	assert.Equal(t, 70.5, in.Weight)
	assert.True(t, in.Smoker)
	assert.Equal(t, 1.8, in.Height)

	raw["age"] = json.Number("30.0")
	in, err = ParseUserInput(raw)
	require.NoError(t, err)
	assert.Equal(t, 30, in.Age)
}

func TestParseUserInputReportsEveryViolation(t *testing.T) {
	raw := RawInput{
		"age":        json.Number("0"),
		"weight":     json.Number("-1"),
		"height":     json.Number("2.5"),
		"income_lpa": json.Number("0"),
		"smoker":     "sometimes",
		"occupation": "Student",
		"nickname":   "ace",
	}

	_, err := ParseUserInput(raw)
	require.Error(t, err)

	assert.Equal(t, []string{
		"age", "weight", "height", "income_lpa", "smoker", "city", "occupation", "nickname",
	}, validationFields(t, err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be greater than 0", verr.Errors[0].Message)
	assert.Equal(t, "must be less than 2.5", verr.Errors[2].Message)
	assert.Equal(t, "field required", verr.Errors[5].Message)
	assert.Contains(t, verr.Errors[6].Message, "must be one of")
	assert.Equal(t, "extra field not permitted", verr.Errors[7].Message)
}

func TestParseUserInputBounds(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  any
		wantOK bool
	}{
		{name: "age lower bound", field: "age", value: json.Number("1"), wantOK: true},
		{name: "age upper bound", field: "age", value: json.Number("119"), wantOK: true},
		{name: "age too old", field: "age", value: json.Number("120"), wantOK: false},
		{name: "age fractional", field: "age", value: json.Number("30.5"), wantOK: false},
		{name: "age word", field: "age", value: "thirty", wantOK: false},
		{name: "height just under limit", field: "height", value: json.Number("2.49"), wantOK: true},
		{name: "height zero", field: "height", value: json.Number("0"), wantOK: false},
		{name: "weight tiny", field: "weight", value: json.Number("0.1"), wantOK: true},
		{name: "income negative", field: "income_lpa", value: json.Number("-5"), wantOK: false},
		{name: "city blank", field: "city", value: "   ", wantOK: false},
		{name: "city number", field: "city", value: json.Number("5"), wantOK: false},
		{name: "smoker null", field: "smoker", value: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validUserInput()
			raw[tt.field] = tt.value

			_, err := ParseUserInput(raw)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{tt.field}, validationFields(t, err))
		})
	}
}

func TestParseUserInputOccupationIsCaseSensitive(t *testing.T) {
	for _, occupation := range models.Occupations {
		raw := validUserInput()
		raw["occupation"] = occupation
		_, err := ParseUserInput(raw)
		assert.NoError(t, err, occupation)
	}

	raw := validUserInput()
	raw["occupation"] = "Private_Job"
	_, err := ParseUserInput(raw)
	assert.Equal(t, []string{"occupation"}, validationFields(t, err))
}

func TestParseExtendedUserInput(t *testing.T) {
	raw := validUserInput()
	raw["name"] = "Nitish"
	raw["married"] = true
	raw["allergies"] = []any{"pollen", "dust"}
	raw["contact_details"] = map[string]any{"phone": "9999999999"}
	raw["email"] = "  Nitish@ICICI.com "
	raw["linkedin_url"] = "https://example.com/"
	raw["address"] = map[string]any{"pin": json.Number("110001")}

	in, err := ParseExtendedUserInput(raw)
	require.NoError(t, err)

	assert.Equal(t, "New Delhi", in.City)
	require.NotNil(t, in.Name)
	assert.Equal(t, "Nitish", *in.Name)
	require.NotNil(t, in.Married)
	assert.True(t, *in.Married)
	assert.Equal(t, []string{"pollen", "dust"}, in.Allergies)
	assert.Equal(t, map[string]string{"phone": "9999999999"}, in.ContactDetails)
	require.NotNil(t, in.Email)
	assert.Equal(t, "nitish@icici.com", *in.Email)
	require.NotNil(t, in.LinkedInURL)
	assert.Equal(t, &models.Address{City: "Aya Nagar", State: "New Delhi", Pin: 110001}, in.Address)
}

func TestParseExtendedUserInputOptionalFieldsStayAbsent(t *testing.T) {
	in, err := ParseExtendedUserInput(validUserInput())
	require.NoError(t, err)

	assert.Nil(t, in.Name)
	assert.Nil(t, in.Married)
	assert.Nil(t, in.Allergies)
	assert.Nil(t, in.ContactDetails)
	assert.Nil(t, in.Email)
	assert.Nil(t, in.LinkedInURL)
	assert.Nil(t, in.Address)
}

func TestParseExtendedUserInputViolations(t *testing.T) {
	raw := validUserInput()
	raw["age"] = json.Number("100")
	raw["weight"] = "65"
	raw["name"] = "a name that is definitely longer than the fifty character limit"
	raw["allergies"] = []any{"a", "b", "c", "d", "e", "f"}
	raw["email"] = "someone@gmail.com"
	raw["linkedin_url"] = "not a url"

	_, err := ParseExtendedUserInput(raw)
	assert.Equal(t, []string{"age", "weight", "name", "allergies", "email", "linkedin_url"}, validationFields(t, err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Age must be between 1 and 99", verr.Errors[0].Message)
}

func TestParseExtendedUserInputEmailDomainCaseInsensitive(t *testing.T) {
	for _, email := range []string{"a@hdfc.com", "b@SBI.COM", "c@AxisBank.com", "d@canarabank.com"} {
		raw := validUserInput()
		raw["email"] = email
		_, err := ParseExtendedUserInput(raw)
		assert.NoError(t, err, email)
	}

	raw := validUserInput()
	raw["email"] = "x@hdfc.co"
	_, err := ParseExtendedUserInput(raw)
	assert.Equal(t, []string{"email"}, validationFields(t, err))
}

// The senior income rule compares income_lpa (lakhs) to the literal 1000000,
// so a 65 year old earning 50 lakhs is still rejected. This pins the current
// threshold rather than the probably intended 10 lakhs.
func TestParseExtendedUserInputSeniorIncomeThreshold(t *testing.T) {
	raw := validUserInput()
	raw["age"] = json.Number("65")
	raw["income_lpa"] = json.Number("50")

	_, err := ParseExtendedUserInput(raw)
	assert.Equal(t, []string{"income_lpa"}, validationFields(t, err))

	raw["income_lpa"] = json.Number("1000000")
	_, err = ParseExtendedUserInput(raw)
	assert.NoError(t, err)

	raw["age"] = json.Number("60")
	raw["income_lpa"] = json.Number("1")
	_, err = ParseExtendedUserInput(raw)
	assert.NoError(t, err)
}

func TestParseExtendedUserInputCrossFieldSkippedOnFieldErrors(t *testing.T) {
	raw := validUserInput()
	raw["age"] = json.Number("65")
	raw["income_lpa"] = json.Number("5")
	raw["occupation"] = "astronaut"

	_, err := ParseExtendedUserInput(raw)
	assert.Equal(t, []string{"occupation"}, validationFields(t, err))
}

func TestParseUserInputRejectsExtendedFields(t *testing.T) {
	raw := validUserInput()
	raw["email"] = "a@hdfc.com"

	_, err := ParseUserInput(raw)
	assert.Equal(t, []string{"email"}, validationFields(t, err))
}
