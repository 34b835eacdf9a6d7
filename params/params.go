// Package params builds and parses the hierarchical configuration
// parameter paths used by the Doctorus deployments.
//
// A path has the form "/doctorus/<env>/<scope...>/<name>": the fixed
// product root, a deployment environment, zero or more scope segments
// (typically a service name), and the parameter name. Segments are
// lowercase alphanumerics with "_" and "-".
//
//	p, _ := params.Build(params.EnvProd, "database_url", "booking-api")
//	// "/doctorus/prod/booking-api/database_url"
package params

import (
	"fmt"
	"regexp"
	"strings"
)

// Root is the fixed first segment of every parameter path.
const Root = "doctorus"

// Environment identifies one deployment environment.
type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Environments returns every deployment environment, in declaration order.
func Environments() []Environment {
	return []Environment{EnvDev, EnvStaging, EnvProd}
}

// KnownEnvironment reports whether the environment is a member of the
// declared set.
func KnownEnvironment(env Environment) bool {
	for _, known := range Environments() {
		if env == known {
			return true
		}
	}
	return false
}

var (
	segmentPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	pathPattern    = regexp.MustCompile(`^/` + Root + `(?:/[a-z0-9][a-z0-9_-]*){2,}$`)
)

// InvalidPathError reports a path or path component that does not
// match the expected shape.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid parameter path %q: %s", e.Path, e.Reason)
}

// Path is a parsed parameter path.
type Path struct {
	Env   Environment
	Scope []string
	Name  string
}

// String returns the canonical string form of the path.
func (p Path) String() string {
	segments := append([]string{"", Root, string(p.Env)}, p.Scope...)
	segments = append(segments, p.Name)
	return strings.Join(segments, "/")
}

// Build constructs a parameter path string from its components.
func Build(env Environment, name string, scope ...string) (string, error) {
	p := Path{Env: env, Scope: scope, Name: name}
	raw := p.String()
	if !KnownEnvironment(env) {
		return "", &InvalidPathError{Path: raw, Reason: fmt.Sprintf("unknown environment %q", env)}
	}
	for _, segment := range append(append([]string{}, scope...), name) {
		if !segmentPattern.MatchString(segment) {
			return "", &InvalidPathError{Path: raw, Reason: fmt.Sprintf("bad segment %q", segment)}
		}
	}
	return raw, nil
}

// MustBuild is like Build but panics on error. It is intended for
// paths assembled from literals at load time.
func MustBuild(env Environment, name string, scope ...string) string {
	raw, err := Build(env, name, scope...)
	if err != nil {
		panic(err)
	}
	return raw
}

// Parse splits a parameter path string into its components.
func Parse(raw string) (Path, error) {
	if !pathPattern.MatchString(raw) {
		return Path{}, &InvalidPathError{Path: raw, Reason: "want /" + Root + "/<env>/<scope...>/<name>"}
	}
	segments := strings.Split(raw, "/")[2:] // drop "" and the root
	env := Environment(segments[0])
	if !KnownEnvironment(env) {
		return Path{}, &InvalidPathError{Path: raw, Reason: fmt.Sprintf("unknown environment %q", env)}
	}
	return Path{
		Env:   env,
		Scope: segments[1 : len(segments)-1],
		Name:  segments[len(segments)-1],
	}, nil
}

// IsValid reports whether the string is a well-formed parameter path
// in a known environment.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Prefix returns the hierarchical prefix covering every parameter
// under the environment and scope, for use with listing APIs.
func Prefix(env Environment, scope ...string) (string, error) {
	if !KnownEnvironment(env) {
		return "", &InvalidPathError{Path: string(env), Reason: fmt.Sprintf("unknown environment %q", env)}
	}
	for _, segment := range scope {
		if !segmentPattern.MatchString(segment) {
			return "", &InvalidPathError{Path: strings.Join(scope, "/"), Reason: fmt.Sprintf("bad segment %q", segment)}
		}
	}
	segments := append([]string{"", Root, string(env)}, scope...)
	return strings.Join(segments, "/"), nil
}
