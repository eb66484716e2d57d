package agcdkhostname_test

import (
	"strings"
	"testing"

	"github.com/advdv/agres/agcdk/agcdkhostname"
	"github.com/advdv/agres/agcdkutil"
	"github.com/cockroachdb/errors"
)

func TestIsHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid fqdn", "api.example.com", true},
		{"valid single label", "localhost", true},
		{"valid with hyphens", "my-api.example.com", true},
		{"valid with digits", "api2.example.com", true},
		{"invalid empty", "", false},
		{"invalid whitespace", "api example.com", false},
		{"invalid leading hyphen label", "-api.example.com", false},
		{"invalid trailing hyphen label", "api-.example.com", false},
		{"invalid empty label", "api..example.com", false},
		{"invalid underscore", "my_api.example.com", false},
		{"invalid label too long", strings.Repeat("a", 64) + ".example.com", false},
		{"invalid total too long", strings.Repeat("abcdefgh.", 30) + "com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := agcdkhostname.IsHostname(tt.input); got != tt.want {
				t.Errorf("IsHostname(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSubdomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid label", "api", true},
		{"valid with hyphen", "my-api", true},
		{"invalid with dot", "api.example", false},
		{"invalid empty", "", false},
		{"invalid whitespace", "my api", false},
		{"invalid leading hyphen", "-api", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := agcdkhostname.IsSubdomain(tt.input); got != tt.want {
				t.Errorf("IsSubdomain(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("subdomain and zone", func(t *testing.T) {
		t.Parallel()
		got, err := agcdkhostname.Merge("api", "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "api.example.com" {
			t.Errorf("Merge() = %q, want %q", got, "api.example.com")
		}
	})

	t.Run("empty subdomain yields apex", func(t *testing.T) {
		t.Parallel()
		got, err := agcdkhostname.Merge("", "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "example.com" {
			t.Errorf("Merge() = %q, want apex %q", got, "example.com")
		}
	})

	t.Run("empty zone is a configuration error", func(t *testing.T) {
		t.Parallel()
		_, err := agcdkhostname.Merge("api", "")
		if err == nil {
			t.Fatal("expected error for empty zone")
		}
		if !errors.Is(err, agcdkutil.ErrConfiguration) {
			t.Errorf("error %v should be marked as configuration error", err)
		}
	})
}

func TestStructuredHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		structured agcdkhostname.Structured
		want       string
	}{
		{"subdomain and domain", agcdkhostname.Structured{
			Subdomain: "api", Domain: "example.com",
		}, "api.example.com"},
		{"env qualifies subdomain", agcdkhostname.Structured{
			Subdomain: "api", Domain: "example.com", Env: "dev1",
		}, "api-dev1.example.com"},
		{"component prepends a label", agcdkhostname.Structured{
			Subdomain: "api", Domain: "example.com", Component: "ws",
		}, "ws.api.example.com"},
		{"all parts", agcdkhostname.Structured{
			Subdomain: "api", Domain: "example.com", Env: "dev1", Component: "ws",
		}, "ws.api-dev1.example.com"},
		{"only env", agcdkhostname.Structured{
			Domain: "example.com", Env: "dev1",
		}, "dev1.example.com"},
		{"only domain yields apex", agcdkhostname.Structured{
			Domain: "example.com",
		}, "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.structured.Hostname()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Hostname() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	fullEnv := agcdkutil.MapEnviron(map[string]string{
		agcdkutil.EnvHostname:   "env.example.com",
		agcdkutil.EnvSubdomain:  "sub",
		agcdkutil.EnvZone:       "zone.example.com",
		agcdkutil.EnvParentZone: "parent.example.com",
	})

	tests := []struct {
		name string
		cfg  agcdkhostname.Config
		want string
	}{
		{"explicit wins over everything", agcdkhostname.Config{
			Explicit:   "explicit.example.com",
			Structured: &agcdkhostname.Structured{Subdomain: "api", Domain: "example.com"},
			Env:        fullEnv,
		}, "explicit.example.com"},
		{"structured wins over environment", agcdkhostname.Config{
			Structured: &agcdkhostname.Structured{Subdomain: "api", Domain: "example.com"},
			Env:        fullEnv,
		}, "api.example.com"},
		{"full hostname variable wins over subdomain pair", agcdkhostname.Config{
			Env: fullEnv,
		}, "env.example.com"},
		{"subdomain merged with primary zone", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvSubdomain:  "sub",
				agcdkutil.EnvZone:       "zone.example.com",
				agcdkutil.EnvParentZone: "parent.example.com",
			}),
		}, "sub.zone.example.com"},
		{"fallback zone variable", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvSubdomain:  "sub",
				agcdkutil.EnvParentZone: "parent.example.com",
			}),
		}, "sub.parent.example.com"},
		{"zone alone yields apex", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvZone: "zone.example.com",
			}),
		}, "zone.example.com"},
		{"structured without domain falls through", agcdkhostname.Config{
			Structured: &agcdkhostname.Structured{Subdomain: "api"},
			Env:        fullEnv,
		}, "env.example.com"},
		{"nothing resolves to absent", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(nil),
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := agcdkhostname.Resolve(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  agcdkhostname.Config
	}{
		{"explicit with whitespace", agcdkhostname.Config{
			Explicit: "bad host.example.com",
			Env:      agcdkutil.MapEnviron(nil),
		}},
		{"invalid env hostname", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvHostname: "bad_host.example.com",
			}),
		}},
		{"invalid env subdomain", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvSubdomain: "bad sub",
				agcdkutil.EnvZone:      "example.com",
			}),
		}},
		{"subdomain without any zone", agcdkhostname.Config{
			Env: agcdkutil.MapEnviron(map[string]string{
				agcdkutil.EnvSubdomain: "sub",
			}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := agcdkhostname.Resolve(tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, agcdkutil.ErrConfiguration) {
				t.Errorf("error %v should be marked as configuration error", err)
			}
		})
	}
}
