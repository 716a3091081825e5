package validator

import "testing"

type registrationInput struct {
	FullName string `validate:"required,min=2"`
	Mobile   string `validate:"required,mobile"`
	Role     string `validate:"required,oneof=admin doctor nurse"`
	Age      int    `validate:"gte=0,lte=130"`
}

func validInput() registrationInput {
	return registrationInput{
		FullName: "Asha Rao",
		Mobile:   "9876543210",
		Role:     "doctor",
		Age:      42,
	}
}

func TestValidateMobileTag(t *testing.T) {
	cv := NewValidator()

	t.Run("accepts bare ten digit number", func(t *testing.T) {
		if err := cv.Validate(validInput()); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	invalid := []struct {
		name   string
		mobile string
	}{
		{"too short", "987654321"},
		{"too long", "98765432100"},
		{"leading zero", "0876543210"},
		{"country code not accepted as input", "+919876543210"},
		{"letters", "98765abcde"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Mobile = tc.mobile
			if err := cv.Validate(in); err == nil {
				t.Fatalf("expected %q to fail mobile validation", tc.mobile)
			}
		})
	}
}

func TestValidateRoleOneOf(t *testing.T) {
	cv := NewValidator()

	in := validInput()
	in.Role = "patient"
	if err := cv.Validate(in); err == nil {
		t.Fatal("expected unknown role to fail validation")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	in := registrationInput{Mobile: "123", Role: "ghost", Age: 200}
	err := cv.Validate(in)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["FullName"] != "FullName is required" {
		t.Errorf("FullName message = %q", formatted["FullName"])
	}
	if formatted["Mobile"] != "Mobile must be a valid 10-digit mobile number" {
		t.Errorf("Mobile message = %q", formatted["Mobile"])
	}
	if formatted["Role"] != "Role must be one of: admin doctor nurse" {
		t.Errorf("Role message = %q", formatted["Role"])
	}
	if formatted["Age"] != "Age must be less than or equal to 130" {
		t.Errorf("Age message = %q", formatted["Age"])
	}
}
