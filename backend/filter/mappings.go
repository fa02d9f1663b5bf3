package filter

// Fallback categories for boards missing from the lookup tables.
const (
	RegionFallback  = "NAC"
	PurposeFallback = "Residência (Acesso Direto)"
)

// Mappings are the static board lookup tables used by the engine to derive
// region and purpose categories. They are loaded once at startup and treated
// as read-only afterwards.
type Mappings struct {
	Region  map[string][]string
	Purpose map[string][]string
}

// RegionsFor returns the region codes for a board, falling back to NAC for
// boards the table does not know about.
func (m Mappings) RegionsFor(board string) []string {
	if regions, ok := m.Region[board]; ok {
		return regions
	}
	return []string{RegionFallback}
}

// PurposesFor is symmetric to RegionsFor, with its own fallback.
func (m Mappings) PurposesFor(board string) []string {
	if purposes, ok := m.Purpose[board]; ok {
		return purposes
	}
	return []string{PurposeFallback}
}

// DefaultMappings returns the built-in board tables.
func DefaultMappings() Mappings {
	return Mappings{
		Region: map[string][]string{
			"USP":     {"SP"},
			"UNIFESP": {"SP"},
			"UNICAMP": {"SP"},
			"UNESP":   {"SP"},
			"UFMG":    {"MG"},
			"UFRJ":    {"RJ"},
			"UFPR":    {"PR"},
			"UFSC":    {"SC"},
			"UFBA":    {"BA"},
			"UFPE":    {"PE"},
			"UFPB":    {"PB"},
			"UFG":     {"GO"},
			"UFAM":    {"AM"},
			"UFES":    {"ES"},
			"FIOCRUZ": {"RJ"},

			"Hospital das Clínicas (USP)":                  {"SP"},
			"Hospital Sírio-Libanês":                       {"SP"},
			"Hospital Albert Einstein":                     {"SP"},
			"Hospital Samaritano":                          {"SP"},
			"Hospital do Coração (HCor)":                   {"SP"},
			"Hospital Moinhos de Vento":                    {"RS"},
			"Hospital de Clínicas de Porto Alegre":         {"RS"},
			"Hospital Universitário Pedro Ernesto (UERJ)":  {"RJ"},
			"Hospital das Clínicas (UFMG)":                 {"MG"},
			"Hospital das Clínicas (UNICAMP)":              {"SP"},
			"Hospital Universitário (UFSC)":                {"SC"},
			"Hospital Universitário (UFPR)":                {"PR"},
			"Hospital Universitário (UFBA)":                {"BA"},
			"Hospital Universitário (UFRJ)":                {"RJ"},
			"Hospital Universitário (UNIFESP)":             {"SP"},
			"Hospital Universitário (UFPE)":                {"PE"},
			"Hospital Universitário (UFG)":                 {"GO"},
			"Hospital Universitário (UFAM)":                {"AM"},
			"Hospital Universitário (UFPB)":                {"PB"},
			"Hospital Universitário (UFES)":                {"ES"},
		},
		Purpose: map[string][]string{
			"USP":     {PurposeFallback},
			"UNIFESP": {PurposeFallback},
			"UNICAMP": {PurposeFallback},
			"UNESP":   {PurposeFallback},
			"UFMG":    {PurposeFallback},
			"UFRJ":    {PurposeFallback},
			"UFPR":    {PurposeFallback},
			"UFSC":    {PurposeFallback},
			"UFBA":    {PurposeFallback},
			"UFPE":    {PurposeFallback},
			"UFPB":    {PurposeFallback},
			"UFG":     {PurposeFallback},
			"UFAM":    {PurposeFallback},
			"UFES":    {PurposeFallback},
			"FIOCRUZ": {PurposeFallback},

			"Hospital das Clínicas (USP)":                  {PurposeFallback},
			"Hospital Sírio-Libanês":                       {PurposeFallback},
			"Hospital Albert Einstein":                     {PurposeFallback},
			"Hospital Samaritano":                          {PurposeFallback},
			"Hospital do Coração (HCor)":                   {PurposeFallback},
			"Hospital Moinhos de Vento":                    {PurposeFallback},
			"Hospital de Clínicas de Porto Alegre":         {PurposeFallback},
			"Hospital Universitário Pedro Ernesto (UERJ)":  {PurposeFallback},
			"Hospital das Clínicas (UFMG)":                 {PurposeFallback},
			"Hospital das Clínicas (UNICAMP)":              {PurposeFallback},
			"Hospital Universitário (UFSC)":                {PurposeFallback},
			"Hospital Universitário (UFPR)":                {PurposeFallback},
			"Hospital Universitário (UFBA)":                {PurposeFallback},
			"Hospital Universitário (UFRJ)":                {PurposeFallback},
			"Hospital Universitário (UNIFESP)":             {PurposeFallback},
			"Hospital Universitário (UFPE)":                {PurposeFallback},
			"Hospital Universitário (UFG)":                 {PurposeFallback},
			"Hospital Universitário (UFAM)":                {PurposeFallback},
			"Hospital Universitário (UFPB)":                {PurposeFallback},
			"Hospital Universitário (UFES)":                {PurposeFallback},
		},
	}
}
