package roles

import (
	"arogyanetra-service/internal/app/contracts"
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var rbacModel string

//go:embed rbac_policy.csv
var rbacPolicy string

type casbinAuthorizer struct {
	enforcer *casbin.Enforcer
}

// NewCasbinAuthorizer builds an enforcer from the embedded model and policy.
// Paths are matched without the API prefix.
func NewCasbinAuthorizer() (contracts.Authorizer, error) {
	enforcer, err := NewEnforcer()
	if err != nil {
		return nil, err
	}
	return &casbinAuthorizer{enforcer: enforcer}, nil
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	policies, groupings, err := parsePolicy(rbacPolicy)
	if err != nil {
		return nil, err
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("add policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicies(groupings); err != nil {
		return nil, fmt.Errorf("add groupings: %w", err)
	}
	return enforcer, nil
}

func (a *casbinAuthorizer) Authorize(accountType, method, path string) (bool, error) {
	if accountType == "" {
		return false, nil
	}
	return a.enforcer.Enforce(accountType, method, path)
}

func parsePolicy(csv string) (policies, groupings [][]string, err error) {
	for i, line := range strings.Split(csv, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		switch {
		case fields[0] == "p" && len(fields) == 4:
			policies = append(policies, fields[1:])
		case fields[0] == "g" && len(fields) == 3:
			groupings = append(groupings, fields[1:])
		default:
			return nil, nil, fmt.Errorf("rbac policy line %d: malformed rule %q", i+1, line)
		}
	}
	return policies, groupings, nil
}
