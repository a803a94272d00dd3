package utils

import "testing"

type phoneFixture struct {
	Phone string `validate:"phone"`
}

func TestPhoneValidation(t *testing.T) {
	valid := []string{
		"+79991234567",
		"79991234567",
		"0123456789",
		"+123456789012345",
	}
	for _, p := range valid {
		if err := Validate(phoneFixture{Phone: p}); err != nil {
			t.Errorf("%q rejected: %v", p, err)
		}
	}

	invalid := []string{
		"",
		"123",
		"+7 999 123 45 67",
		"8-999-123-45-67",
		"abcdefghij",
		"+1234567890123456", // 16 digits
	}
	for _, p := range invalid {
		if err := Validate(phoneFixture{Phone: p}); err == nil {
			t.Errorf("%q accepted", p)
		}
	}
}
