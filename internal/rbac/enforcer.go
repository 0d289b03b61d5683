package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Route-level permissions by employee role. Ownership rules (a manager may only
// review direct reports, a lead only their own subtree) are business rules and
// stay in the services; this table only answers "may this role hit this route".
var policies = [][]string{
	{"lead", "cycle", "manage"},
	{"lead", "employee", "create"},
	{"lead", "feedback_request", "create"},
	{"lead", "report", "read"},
	{"lead", "appraisal", "finalize"},
	{"manager", "team", "read"},
}

// Leads inherit the manager surface.
var groupings = [][]string{
	{"lead", "manager"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range groupings {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
