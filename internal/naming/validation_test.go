package naming

import (
	"strings"
	"testing"
)

func TestValidateAppName(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "grocery-list", wantErr: false},
		{name: "valid max length", value: strings.Repeat("a", appNameMaxLength), wantErr: false},
		{name: "too long", value: strings.Repeat("a", appNameMaxLength+1), wantErr: true},
		{name: "too short", value: "a", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "contains uppercase", value: "Grocery", wantErr: true},
		{name: "starts with digit", value: "1grocery", wantErr: true},
		{name: "ends with hyphen", value: "grocery-", wantErr: true},
		{name: "contains underscore", value: "grocery_list", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAppName(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateComponentName(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "frontend", value: "frontend", wantErr: false},
		{name: "db", value: "db", wantErr: false},
		{name: "too long", value: strings.Repeat("b", componentNameMaxLength+1), wantErr: true},
		{name: "dot", value: "back.end", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateComponentName(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRegion(t *testing.T) {
	for _, r := range []string{"sfo3", "nyc1", "ams3"} {
		if err := ValidateRegion(r); err != nil {
			t.Errorf("ValidateRegion(%q) = %v", r, err)
		}
	}
	for _, r := range []string{"", "SFO3", "sf3", "sfo-3"} {
		if err := ValidateRegion(r); err == nil {
			t.Errorf("ValidateRegion(%q) = nil, want error", r)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	if err := ValidateSlug("size", "db-s-1vcpu-1gb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSlug("size", "basic-xxs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ValidateSlug("instance size", "Basic XXS")
	if err == nil || !strings.Contains(err.Error(), "instance size") {
		t.Fatalf("ValidateSlug() error = %v, want instance size error", err)
	}
}

func TestValidateRepo(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{value: "org/grocery-list", wantErr: false},
		{value: "my.org/app_v2", wantErr: false},
		{value: "grocery-list", wantErr: true},
		{value: "org/", wantErr: true},
		{value: "/repo", wantErr: true},
		{value: "org/repo/extra", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			err := ValidateRepo(tc.value)
			if tc.wantErr != (err != nil) {
				t.Fatalf("ValidateRepo(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestValidateStackName(t *testing.T) {
	if err := ValidateStackName("dev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateStackName("org/dev"); err == nil {
		t.Fatalf("expected error for slash")
	}
	if err := ValidateStackName(strings.Repeat("s", stackNameMaxLength+1)); err == nil {
		t.Fatalf("expected error for long name")
	}
}
