package models

// FilterKind identifies which lookup a request asks for
type FilterKind int

const (
	// FilterNone means no recognized lookup criteria were supplied
	FilterNone FilterKind = iota
	// FilterByID looks a product up by its id
	FilterByID
	// FilterByNameAndCategory matches a name fragment within one category
	FilterByNameAndCategory
	// FilterByName matches a name fragment
	FilterByName
	// FilterByCategory matches every product of one category
	FilterByCategory
)

// String returns a stable name used in logs
func (k FilterKind) String() string {
	switch k {
	case FilterByID:
		return "by_id"
	case FilterByNameAndCategory:
		return "by_name_and_category"
	case FilterByName:
		return "by_name"
	case FilterByCategory:
		return "by_category"
	default:
		return "none"
	}
}

// Filter holds the lookup criteria derived from a single request.
// Only the fields relevant to Kind are set.
type Filter struct {
	Kind      FilterKind `json:"kind"`
	ID        string     `json:"id,omitempty"`
	Nome      string     `json:"nome,omitempty"`
	Categoria string     `json:"categoria,omitempty"`
}

// NewFilter resolves the optional criteria into exactly one filter.
// An id wins over everything else; nome and categoria combine when both are present.
func NewFilter(id, nome, categoria *string) Filter {
	switch {
	case id != nil:
		return Filter{Kind: FilterByID, ID: *id}
	case nome != nil && categoria != nil:
		return Filter{Kind: FilterByNameAndCategory, Nome: *nome, Categoria: *categoria}
	case nome != nil:
		return Filter{Kind: FilterByName, Nome: *nome}
	case categoria != nil:
		return Filter{Kind: FilterByCategory, Categoria: *categoria}
	default:
		return Filter{Kind: FilterNone}
	}
}

// IsQueryable reports whether the filter maps to a store query
func (f Filter) IsQueryable() bool {
	return f.Kind != FilterNone
}
