package composer

import (
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`{
  "name": "kanopi/saplings",
  "description": "A Drupal install profile",
  "type": "drupal-profile",
  "require": {
    "php": ">=8.1",
    "ext-json": "*",
    "drupal/core": "^10.2",
    "kanopi/saplings-content": "^1.0",
    "monolog/monolog": "^3.0"
  },
  "require-dev": {
    "phpunit/phpunit": "^10.0"
  },
  "extra": {
    "installer-paths": {
      "web/modules/contrib/{$name}": ["type:drupal-module"]
    }
  },
  "autoload": {
    "psr-4": {"Kanopi\\": "src/"}
  }
}`)

	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "kanopi/saplings" {
		t.Errorf("name = %q, want %q", m.Name, "kanopi/saplings")
	}
	if m.Type != "drupal-profile" {
		t.Errorf("type = %q, want %q", m.Type, "drupal-profile")
	}

	wantOrder := []string{"php", "ext-json", "drupal/core", "kanopi/saplings-content", "monolog/monolog"}
	if len(m.Require) != len(wantOrder) {
		t.Fatalf("got %d require entries, want %d", len(m.Require), len(wantOrder))
	}
	for i, want := range wantOrder {
		if m.Require[i].Name != want {
			t.Errorf("require[%d] = %q, want %q (declaration order must be preserved)", i, m.Require[i].Name, want)
		}
	}
	if m.Require[2].Constraint != "^10.2" {
		t.Errorf("drupal/core constraint = %q, want %q", m.Require[2].Constraint, "^10.2")
	}
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse([]byte(`{"require": {"drupal/token": "^1.0"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "" {
		t.Errorf("name = %q, want empty for caller fallback", m.Name)
	}
	if m.Type != "unknown" {
		t.Errorf("type = %q, want %q", m.Type, "unknown")
	}
}

func TestParse_NoRequire(t *testing.T) {
	m, err := Parse([]byte(`{"name": "vendor/leaf", "type": "library"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(m.Require) != 0 {
		t.Errorf("got %d require entries, want 0", len(m.Require))
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, data := range []string{"", "[]", "not json", `{"require": {"a": 1}}`} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", data)
		}
	}
}

func TestIsPackageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"monolog/monolog", true},
		{"kanopi/saplings-content", true},
		{"drupal/ctools", true},
		{"vendor/pkg.name", true},
		{"php", false},
		{"ext-json", false},
		{"lib-curl", false},
		{"composer-plugin-api", false},
		{"Vendor/Pkg", false},
		{"vendor/", false},
		{"/pkg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPackageName(tt.name); got != tt.want {
				t.Errorf("IsPackageName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
