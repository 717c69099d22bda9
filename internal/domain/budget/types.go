package budget

// Type enumerates the budget types offered by the quoting flow.
type Type string

const (
	TypeRemocao              Type = "REMOÇÃO"
	TypeImplantacaoAutomidia Type = "IMPLANTAÇÃO AUTOMIDIA"
	TypeTroca                Type = "TROCA"
	TypePlotagemAdesivo      Type = "PLOTAGEM ADESIVO"
	TypeSiderUV              Type = "SIDER E UV"
)

// Types returns all budget types in presentation order.
func Types() []Type {
	return []Type{
		TypeRemocao,
		TypeImplantacaoAutomidia,
		TypeTroca,
		TypePlotagemAdesivo,
		TypeSiderUV,
	}
}

// IsValidType reports whether t is a known budget type.
func IsValidType(t Type) bool {
	switch t {
	case TypeRemocao, TypeImplantacaoAutomidia, TypeTroca, TypePlotagemAdesivo, TypeSiderUV:
		return true
	}
	return false
}

// Status is the lifecycle state of a budget.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusSent     Status = "SENT"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsValidStatus reports whether s is a known status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// statusTransitions holds the allowed lifecycle moves. A rejected budget
// may be re-sent after revision; approval and rejection only happen to a
// sent budget.
var statusTransitions = map[Status][]Status{
	StatusDraft:    {StatusSent},
	StatusSent:     {StatusApproved, StatusRejected},
	StatusRejected: {StatusSent},
	StatusApproved: {},
}

// CanTransition reports whether a budget may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
