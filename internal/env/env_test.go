package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("CATALOG_TEST_STRING", "value")

	if got := GetString("CATALOG_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetString() = %q, want %q", got, "value")
	}
	if got := GetString("CATALOG_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetString() fallback = %q, want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("CATALOG_TEST_INT", "42")
	t.Setenv("CATALOG_TEST_BAD_INT", "forty-two")

	if got := GetInt("CATALOG_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt() = %d, want 42", got)
	}
	if got := GetInt("CATALOG_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt() with invalid value = %d, want fallback 7", got)
	}
	if got := GetInt("CATALOG_TEST_UNSET", 7); got != 7 {
		t.Errorf("GetInt() fallback = %d, want 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("CATALOG_TEST_BOOL", "true")

	if got := GetBool("CATALOG_TEST_BOOL", false); !got {
		t.Error("GetBool() = false, want true")
	}
	if got := GetBool("CATALOG_TEST_UNSET", true); !got {
		t.Error("GetBool() fallback = false, want true")
	}
}
