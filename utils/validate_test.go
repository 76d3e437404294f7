package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"ana.lopez+test@sub.example.co",
		"A_B%c-d@host-name.io",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"ana",
		"ana@",
		"@example.com",
		"ana@example",
		"ana@example.c",
		"ana example@example.com",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("12345") {
		t.Error("5-char password should be rejected")
	}
	if !ValidatePassword("123456") {
		t.Error("6-char password should be accepted")
	}
}

func TestIsEmailIdentifier(t *testing.T) {
	if !IsEmailIdentifier("ana@example.com") {
		t.Error("identifier with @ should be treated as email")
	}
	if IsEmailIdentifier("ana_lopez") {
		t.Error("identifier without @ should be treated as username")
	}
}
