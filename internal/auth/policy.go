package auth

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// Access classifies what a rule demands from the caller.
type Access int

const (
	// AccessPublic allows the request with no session.
	AccessPublic Access = iota
	// AccessAuthenticated allows any caller with a valid session.
	AccessAuthenticated
	// AccessRole allows only sessions carrying one of the rule's roles.
	AccessRole
)

// Rule maps a route pattern (and optionally a method) to a required access
// level. Patterns use path segments: a ":name" segment matches any single
// segment and a trailing "**" matches any remainder. Roles lists the claims
// accepted for AccessRole; listing several declares the sharing explicitly
// rather than implying any hierarchy.
type Rule struct {
	Method  string // empty matches any method
	Pattern string
	Access  Access
	Roles   []domain.Role
}

type compiledRule struct {
	rule     Rule
	segments []string
	wildcard bool
	literals int
}

// Policy is the immutable authorization rule table, compiled once at process
// start and evaluated per request. Roles are disjoint: ADMIN does not satisfy
// CUSTOMER rules or vice versa.
type Policy struct {
	rules []compiledRule
}

// NewPolicy compiles and orders the rules so that the most specific matching
// pattern wins: exact paths beat parameterized ones, which beat wildcard
// prefixes.
func NewPolicy(rules []Rule) *Policy {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{rule: r, segments: splitPath(r.Pattern)}
		if n := len(cr.segments); n > 0 && cr.segments[n-1] == "**" {
			cr.wildcard = true
			cr.segments = cr.segments[:n-1]
		}
		for _, seg := range cr.segments {
			if !strings.HasPrefix(seg, ":") {
				cr.literals++
			}
		}
		compiled = append(compiled, cr)
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		a, b := compiled[i], compiled[j]
		if a.wildcard != b.wildcard {
			return !a.wildcard
		}
		if len(a.segments) != len(b.segments) {
			return len(a.segments) > len(b.segments)
		}
		return a.literals > b.literals
	})

	return &Policy{rules: compiled}
}

// Authorize decides whether the request may proceed. It returns nil to allow,
// an unauthorized error when no session is present, and a forbidden error when
// the session's role does not satisfy the matched rule.
func (p *Policy) Authorize(method, path string, session *domain.AuthSession) error {
	// Preflight requests are always allowed.
	if method == http.MethodOptions {
		return nil
	}

	segments := splitPath(path)
	for _, cr := range p.rules {
		if !cr.matches(method, segments) {
			continue
		}
		switch cr.rule.Access {
		case AccessPublic:
			return nil
		case AccessAuthenticated:
			if session == nil {
				return apperrors.NewUnauthorized("authentication required")
			}
			return nil
		case AccessRole:
			if session == nil {
				return apperrors.NewUnauthorized("authentication required")
			}
			for _, role := range cr.rule.Roles {
				if session.HasRole(role) {
					return nil
				}
			}
			return apperrors.NewForbidden("insufficient role")
		}
	}

	// No rule matched: any authenticated caller may proceed.
	if session == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	return nil
}

// Enforce adapts the policy into request middleware. It runs after the Gate so
// the session, when present, has already been validated.
func (p *Policy) Enforce() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, _ := SessionFromContext(c)
		if err := p.Authorize(c.Method(), c.Path(), session); err != nil {
			return err
		}
		return c.Next()
	}
}

func (cr *compiledRule) matches(method string, segments []string) bool {
	if cr.rule.Method != "" && cr.rule.Method != method {
		return false
	}
	if cr.wildcard {
		if len(segments) < len(cr.segments) {
			return false
		}
	} else if len(segments) != len(cr.segments) {
		return false
	}
	for i, pat := range cr.segments {
		if strings.HasPrefix(pat, ":") {
			continue
		}
		if segments[i] != pat {
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
