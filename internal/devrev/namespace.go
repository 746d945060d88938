package devrev

// defaultNamespace is used when a search names an unknown namespace.
const defaultNamespace = "issue"

// searchNamespaces maps every valid search namespace to its wire-format
// name in the DevRev API. The mapping is the identity for all namespaces
// except article, which the API indexes as artifact.
var searchNamespaces = map[string]string{
	"account":         "account",
	"article":         "artifact",
	"capability":      "capability",
	"comment":         "comment",
	"component":       "component",
	"conversation":    "conversation",
	"custom_object":   "custom_object",
	"custom_part":     "custom_part",
	"custom_work":     "custom_work",
	"dashboard":       "dashboard",
	"dev_user":        "dev_user",
	"enhancement":     "enhancement",
	"feature":         "feature",
	"group":           "group",
	"issue":           "issue",
	"linkable":        "linkable",
	"microservice":    "microservice",
	"object_member":   "object_member",
	"operation":       "operation",
	"opportunity":     "opportunity",
	"part":            "part",
	"product":         "product",
	"project":         "project",
	"question_answer": "question_answer",
	"rev_org":         "rev_org",
	"rev_user":        "rev_user",
	"runnable":        "runnable",
	"service_account": "service_account",
	"sys_user":        "sys_user",
	"tag":             "tag",
	"task":            "task",
	"ticket":          "ticket",
	"vista":           "vista",
	"workflow":        "workflow",
}

// normalizeNamespace returns the namespace unchanged when it is valid and
// silently falls back to issue otherwise.
func normalizeNamespace(namespace string) string {
	if _, ok := searchNamespaces[namespace]; !ok {
		return defaultNamespace
	}
	return namespace
}

// validPartTypes is the closed set of part classifications. Unknown part
// types are still forwarded to the API; only a warning is logged.
var validPartTypes = map[string]struct{}{
	"capability":  {},
	"enhancement": {},
	"feature":     {},
	"linkable":    {},
	"runnable":    {},
	"product":     {},
}

// creatableWorkTypes is the set of work types accepted by CreateWork.
// Tickets are valid works elsewhere but cannot be created here.
var creatableWorkTypes = map[string]struct{}{
	"issue": {},
	"task":  {},
}
