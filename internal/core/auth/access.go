package auth

import "github.com/nevseti/fincloud-system/internal/core/domain"

// Action names an operation subject to access control.
type Action string

const (
	ActionCreateOperation Action = "operation:create"
	ActionReadOperations  Action = "operation:read"
	ActionReadBalance     Action = "balance:read"
	ActionReadSummary     Action = "summary:read"
	ActionManageUsers     Action = "users:manage"
	ActionReadOwnProfile  Action = "profile:read"
)

// Decision is the outcome of evaluating an action against a caller's
// claims. BranchFilter narrows subsequent queries: domain.BranchAll (0)
// means no filtering.
type Decision struct {
	Allowed      bool
	BranchFilter int
}

// rule is one cell of the decision table.
type rule struct {
	allowed bool
	// branchBound restricts the action to the caller's own branch: reads
	// default to it, and an explicitly requested foreign branch is denied
	// outright rather than silently redirected.
	branchBound bool
}

// policy is the single declarative decision table shared by every service.
// Role or action combinations absent from the table are denied.
var policy = map[string]map[Action]rule{
	domain.RoleAccountant: {
		ActionCreateOperation: {allowed: true, branchBound: true},
		ActionReadOperations:  {allowed: true, branchBound: true},
		ActionReadBalance:     {allowed: true, branchBound: true},
		ActionReadSummary:     {allowed: true, branchBound: true},
		ActionReadOwnProfile:  {allowed: true},
	},
	domain.RoleManager: {
		ActionReadOperations: {allowed: true},
		ActionReadBalance:    {allowed: true},
		ActionReadSummary:    {allowed: true},
		ActionReadOwnProfile: {allowed: true},
	},
	domain.RoleSystemAdmin: {
		ActionCreateOperation: {allowed: true},
		ActionReadOperations:  {allowed: true},
		ActionReadBalance:     {allowed: true},
		ActionReadSummary:     {allowed: true},
		ActionManageUsers:     {allowed: true},
		ActionReadOwnProfile:  {allowed: true},
	},
}

// Evaluate decides whether the caller may perform action, and with which
// branch scope. requestedBranch is the branch the caller explicitly asked
// for; domain.BranchAll means no explicit request. Evaluate is pure and
// safe for concurrent use.
func Evaluate(caller Claims, action Action, requestedBranch int) Decision {
	r, ok := policy[caller.Role][action]
	if !ok || !r.allowed {
		return Decision{}
	}

	if !r.branchBound {
		// Unrestricted read or write; an explicit branch request becomes
		// the filter, otherwise all branches are in scope.
		return Decision{Allowed: true, BranchFilter: requestedBranch}
	}

	// Branch-bound callers operate on their own branch only. An explicit
	// request for a different branch is a denial, not a redirect.
	if requestedBranch != domain.BranchAll && requestedBranch != caller.BranchID {
		return Decision{}
	}
	return Decision{Allowed: true, BranchFilter: caller.BranchID}
}
