package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "6000000000", "7123456789"}
	invalid := []string{"5876543210", "987654321", "98765432100", "abcdefghij", ""}
	for _, m := range valid {
		if !IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = true, want false", m)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"A1B2C3D4", "ZZZZ9999", "00000000"}
	invalid := []string{"a1b2c3d4", "A1B2C3D", "A1B2C3D45", "A1B2-3D4", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidAadhaar(t *testing.T) {
	valid := []string{"123412341234", "000000000000"}
	invalid := []string{"12341234123", "1234123412345", "12341234123a", ""}
	for _, a := range valid {
		if !IsValidAadhaar(a) {
			t.Errorf("IsValidAadhaar(%q) = false, want true", a)
		}
	}
	for _, a := range invalid {
		if IsValidAadhaar(a) {
			t.Errorf("IsValidAadhaar(%q) = true, want false", a)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"SBIN0001234", "PUNB0123456", "hdfc0ABC123"}
	invalid := []string{"SBIN1001234", "SBI00001234", "SBIN000123", ""}
	for _, code := range valid {
		if !IsValidIFSC(code) {
			t.Errorf("IsValidIFSC(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidIFSC(code) {
			t.Errorf("IsValidIFSC(%q) = true, want false", code)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"face", "fingerprint"}
	if !IsInSlice("face", slice) {
		t.Error("IsInSlice(face) = false, want true")
	}
	if IsInSlice("iris", slice) {
		t.Error("IsInSlice(iris) = true, want false")
	}
}
